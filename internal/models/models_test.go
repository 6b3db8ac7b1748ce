package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExperienceSerialize(t *testing.T) {
	e := Experience{
		ID:       3,
		Title:    "Engineer",
		Company:  "Acme",
		Duration: "2020 - 2022",
		Points:   "Built things\nFixed things",
		Skills:   "Go, SQL",
	}

	view := e.Serialize()
	assert.Equal(t, DefaultExperienceImage, view.Image)
	assert.Equal(t, []string{"Built things", "Fixed things"}, view.Points)
	assert.Equal(t, []string{"Go", "SQL"}, view.Skills)

	e.Image = strPtr("acme.png")
	assert.Equal(t, "acme.png", e.Serialize().Image)
}

func TestExperiencePatchAcceptsListsAndStrings(t *testing.T) {
	var patch ExperiencePatch
	require.NoError(t, json.Unmarshal([]byte(`{"points":["a","b"],"skills":"x, y"}`), &patch))

	e := Experience{Title: "kept"}
	patch.Apply(&e)

	assert.Equal(t, "kept", e.Title)
	assert.Equal(t, "a\nb", e.Points)
	assert.Equal(t, "x, y", e.Skills)
	assert.Equal(t, []string{"x", "y"}, e.Serialize().Skills)
}

func TestStringListRejectsObjects(t *testing.T) {
	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}

func TestEducationSerializeEmptyInformation(t *testing.T) {
	e := Education{Degree: "BSc"}
	assert.Equal(t, []string{}, e.Serialize().AdditionalInformation)

	e.AdditionalInformation = strPtr("Honours\nThesis")
	assert.Equal(t, []string{"Honours", "Thesis"}, e.Serialize().AdditionalInformation)
}

func TestRequiredFields(t *testing.T) {
	p := CertificatePatch{Title: strPtr("X"), Institution: strPtr("Y"), Link: strPtr("http://z")}
	err := p.Missing()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, "missing required field: certificate.date", err.Error())

	p.Date = strPtr("Jun 2 2021")
	assert.NoError(t, p.Missing())
}

func TestRequiredFieldsAcceptEmptyStrings(t *testing.T) {
	p := ProjectPatch{
		Name:         strPtr(""),
		Description:  strPtr(" "),
		GithubLink:   strPtr(""),
		KeyLearnings: strPtr(""),
		Status:       strPtr(""),
	}
	assert.NoError(t, p.Missing())

	var skill SkillPatch
	err := skill.Missing()
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "technical_skill.name, technical_skill.category_id")

	var points StringList
	e := ExperiencePatch{Title: strPtr(""), Company: strPtr(""), Duration: strPtr(""), Skills: &points}
	assert.EqualError(t, e.Missing(), "missing required field: experience.points")
}

func TestSkillRequiresCategory(t *testing.T) {
	s := Skill{Name: "Go"}
	assert.ErrorIs(t, s.BeforeSave(nil), ErrMissingField)
	s.CategoryID = 1
	assert.NoError(t, s.BeforeSave(nil))
}

func TestDocumentScan(t *testing.T) {
	var d Document
	require.NoError(t, d.Scan(`{"stack":["go","sql"]}`))
	assert.Equal(t, map[string]any{"stack": []any{"go", "sql"}}, d.Data)

	require.NoError(t, d.Scan([]byte(`{not json`)))
	assert.Equal(t, map[string]any{}, d.Data)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDocumentValue(t *testing.T) {
	v, err := NewDocument(map[string]any{"a": 1}).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	v, err = Document{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestProjectSerializeSubstitutesEmptyDocument(t *testing.T) {
	raw, err := json.Marshal(Project{Name: "p"}.Serialize())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"technical_details":{}`)
	assert.Contains(t, string(raw), `"project_image":null`)
}

func TestOverviewText(t *testing.T) {
	o := Overview{OverviewData: NewDocument(map[string]any{"overview_text": "<p>hi</p>"})}
	assert.Equal(t, "<p>hi</p>", o.Text())
	assert.Equal(t, "", Overview{}.Text())
}

func TestListRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	noSeparator := func(sep string) gopter.Gen {
		return gen.SliceOf(gen.AlphaString()).SuchThat(func(items []string) bool {
			for _, item := range items {
				if strings.Contains(item, sep) {
					return false
				}
			}
			return len(items) > 0
		})
	}

	properties.Property("points survive storage", prop.ForAll(
		func(items []string) bool {
			e := Experience{Points: StringList(items).Join(LineSeparator), Skills: "x"}
			got := e.Serialize().Points
			return strings.Join(got, "|") == strings.Join(items, "|") && len(got) == len(items)
		},
		noSeparator(LineSeparator),
	))

	properties.Property("skills survive storage", prop.ForAll(
		func(items []string) bool {
			e := Experience{Points: "x", Skills: StringList(items).Join(SkillSeparator)}
			got := e.Serialize().Skills
			return strings.Join(got, "|") == strings.Join(items, "|") && len(got) == len(items)
		},
		noSeparator(SkillSeparator),
	))

	properties.TestingRun(t)
}
