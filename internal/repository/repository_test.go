package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Zachkp/portfolio/internal/database"
	"github.com/Zachkp/portfolio/internal/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := database.Open(database.Options{URI: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	return New(db)
}

func TestStoreCRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cert := &models.Certificate{Title: "X", Institution: "Y", Link: "http://z", Date: "Jun 2 2021"}
	require.NoError(t, repo.Certificates.Create(ctx, cert))
	require.NotZero(t, cert.ID)

	got, err := repo.Certificates.Get(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)

	got.Title = "Renamed"
	require.NoError(t, repo.Certificates.Update(ctx, got))

	all, err := repo.Certificates.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Renamed", all[0].Title)

	require.NoError(t, repo.Certificates.Delete(ctx, got))

	_, err = repo.Certificates.Get(ctx, cert.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := repo.Certificates.Exists(ctx, cert.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreCreateRollsBackOnHookFailure(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Skills.Create(ctx, &models.Skill{Name: "Go"})
	require.ErrorIs(t, err, models.ErrMissingField)

	count, err := repo.Skills.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStoreListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	projects, err := repo.Projects.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	_, err = repo.Overviews.First(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExperienceListsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var e models.Experience
	models.ExperiencePatch{
		Title:    ptr("Engineer"),
		Company:  ptr("Acme"),
		Duration: ptr("2021"),
		Points:   &models.StringList{"a", "b"},
		Skills:   &models.StringList{"x", "y"},
	}.Apply(&e)
	require.NoError(t, repo.Experiences.Create(ctx, &e))

	got, err := repo.Experiences.Get(ctx, e.ID)
	require.NoError(t, err)
	view := got.Serialize()
	assert.Equal(t, []string{"a", "b"}, view.Points)
	assert.Equal(t, []string{"x", "y"}, view.Skills)
}

func TestProjectDocumentsDegradeGracefully(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := &models.Project{
		Name:             "Site",
		Description:      "Portfolio",
		GithubLink:       "https://github.com/example/site",
		TechnicalDetails: models.NewDocument(map[string]any{"stack": []any{"go"}}),
		KeyLearnings:     "gorm",
		Status:           "done",
	}
	require.NoError(t, repo.Projects.Create(ctx, p))

	got, err := repo.Projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"stack": []any{"go"}}, got.TechnicalDetails.Data)

	require.NoError(t, repo.DB.Exec("UPDATE project SET technical_details = ? WHERE id = ?", "{broken", p.ID).Error)

	got, err = repo.Projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got.TechnicalDetails.Data)
}

func TestPaginate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Certificates.Create(ctx, &models.Certificate{
			Title: "C", Institution: "I", Link: "http://l", Date: "Jan 1 2020",
		}))
	}

	page, err := repo.Certificates.List(ctx, Paginate(3, 12))
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint(25), page[0].ID)

	page, err = repo.Certificates.List(ctx, Paginate(1, 12))
	require.NoError(t, err)
	require.Len(t, page, 12)
	assert.Equal(t, uint(1), page[0].ID)
}

func TestListBreaksTiesByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, title := range []string{"B", "A", "B"} {
		require.NoError(t, repo.Certificates.Create(ctx, &models.Certificate{
			Title: title, Institution: "I", Link: "http://l", Date: "Jan 1 2020",
		}))
	}

	byTitle := func(db *gorm.DB) *gorm.DB { return db.Order("title") }
	certs, err := repo.Certificates.List(ctx, byTitle)
	require.NoError(t, err)
	require.Len(t, certs, 3)
	assert.Equal(t, []uint{2, 1, 3}, []uint{certs[0].ID, certs[1].ID, certs[2].ID})
}

func TestCategoriesPreloadSkills(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cat := &models.SkillCategory{Name: "Languages"}
	require.NoError(t, repo.Categories.Create(ctx, cat))
	require.NoError(t, repo.Skills.Create(ctx, &models.Skill{Name: "Go", CategoryID: cat.ID}))
	require.NoError(t, repo.Skills.Create(ctx, &models.Skill{Name: "SQL", CategoryID: cat.ID}))

	cats, err := repo.Categories.List(ctx, Preload("Skills"))
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Skills, 2)
	assert.Equal(t, "Go", cats[0].Skills[0].Name)

	err = repo.Categories.Create(ctx, &models.SkillCategory{Name: "Languages"})
	assert.Error(t, err, "category names are unique")
}

func TestVisitorStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	visits := []models.Visitor{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/career", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.AddDate(0, 0, -3)},
		{HashedIP: "c", Path: "/", Timestamp: now.AddDate(0, -14, 0)},
	}
	for i := range visits {
		require.NoError(t, repo.Visitors.Record(ctx, &visits[i]))
	}

	stats, err := repo.Visitors.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathStat{Path: "/", Views: 3}, stats.TopPaths[0])
	assert.Len(t, stats.RecentVisitors, 4)

	purged, err := repo.Visitors.PurgeBefore(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func ptr(s string) *string { return &s }
