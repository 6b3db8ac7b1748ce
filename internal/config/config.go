package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Values come from the
// environment (a .env file is loaded first) and from command line flags.
type Config struct {
	Env                string
	Debug              bool
	Port               string
	DatabaseURI        string
	TrackModifications bool

	MailServer   string
	MailPort     int
	MailUseTLS   bool
	MailUsername string
	MailPassword string

	RecaptchaPublicKey  string
	RecaptchaPrivateKey string
	RecaptchaVerifyURL  string

	SecretKey   string
	CSRFEnabled bool
	AdminToken  string

	CORSAllowedOrigins []string
}

// Configuration profiles selected by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvDefault     = "default"
)

// Environment variable names, also used as viper keys in lower case.
const (
	KeyEnv                 = "app_env"
	KeyDebug               = "debug"
	KeyPort                = "port"
	KeyDatabaseURI         = "database_uri"
	KeyTrackModifications  = "track_modifications"
	KeyMailServer          = "mail_server"
	KeyMailPort            = "mail_port"
	KeyMailUseTLS          = "mail_use_tls"
	KeyMailUsername        = "mail_username"
	KeyMailPassword        = "mail_password"
	KeyRecaptchaPublicKey  = "recaptcha_public_key"
	KeyRecaptchaPrivateKey = "recaptcha_private_key"
	KeyRecaptchaVerifyURL  = "recaptcha_verify_url"
	KeySecretKey           = "secret_key"
	KeyCSRFEnabled         = "csrf_enabled"
	KeyAdminToken          = "admin_token"
	KeyCORSAllowedOrigins  = "cors_allowed_origins"
)

// SetDefaults registers every key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnv, EnvDefault)
	v.SetDefault(KeyDebug, "false")
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyDatabaseURI, "sqlite:///portfolio.db")
	v.SetDefault(KeyTrackModifications, "false")
	v.SetDefault(KeyMailServer, "smtp.gmail.com")
	v.SetDefault(KeyMailPort, 587)
	v.SetDefault(KeyMailUseTLS, "true")
	v.SetDefault(KeyMailUsername, "")
	v.SetDefault(KeyMailPassword, "")
	v.SetDefault(KeyRecaptchaPublicKey, "")
	v.SetDefault(KeyRecaptchaPrivateKey, "")
	v.SetDefault(KeyRecaptchaVerifyURL, "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault(KeySecretKey, "")
	v.SetDefault(KeyCSRFEnabled, "true")
	v.SetDefault(KeyAdminToken, "")
	v.SetDefault(KeyCORSAllowedOrigins, "*")
}

// New returns a viper instance reading the process environment.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load builds a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:                strings.ToLower(strings.TrimSpace(v.GetString(KeyEnv))),
		Debug:              ParseBool(v.GetString(KeyDebug)),
		Port:               v.GetString(KeyPort),
		DatabaseURI:        v.GetString(KeyDatabaseURI),
		TrackModifications: ParseBool(v.GetString(KeyTrackModifications)),

		MailServer:   v.GetString(KeyMailServer),
		MailPort:     v.GetInt(KeyMailPort),
		MailUseTLS:   ParseBool(v.GetString(KeyMailUseTLS)),
		MailUsername: v.GetString(KeyMailUsername),
		MailPassword: v.GetString(KeyMailPassword),

		RecaptchaPublicKey:  v.GetString(KeyRecaptchaPublicKey),
		RecaptchaPrivateKey: v.GetString(KeyRecaptchaPrivateKey),
		RecaptchaVerifyURL:  v.GetString(KeyRecaptchaVerifyURL),

		SecretKey:   v.GetString(KeySecretKey),
		CSRFEnabled: ParseBool(v.GetString(KeyCSRFEnabled)),
		AdminToken:  v.GetString(KeyAdminToken),

		CORSAllowedOrigins: splitList(v.GetString(KeyCORSAllowedOrigins)),
	}

	switch cfg.Env {
	case EnvDevelopment:
		cfg.Debug = true
	case EnvProduction:
		cfg.Debug = false
	case "", EnvDefault:
		cfg.Env = EnvDefault
	default:
		return nil, fmt.Errorf("unknown environment %q (want development, production or default)", cfg.Env)
	}

	if cfg.MailPort <= 0 || cfg.MailPort > 65535 {
		return nil, fmt.Errorf("invalid mail port: %s", v.GetString(KeyMailPort))
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// ParseBool treats "true", "1", "yes" and "on" (any case) as true and
// everything else as false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
