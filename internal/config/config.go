package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Lifetime string `yaml:"lifetime"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	ResendWindow string `yaml:"resend_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

type CloudinaryConfig struct {
	URL    string `yaml:"url"`
	Folder string `yaml:"folder"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	OTP        OTPConfig        `yaml:"otp"`
	Twilio     TwilioConfig     `yaml:"twilio"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
}

type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenLifetime    time.Duration
	OTP_TTL          time.Duration
	OTP_Length       int
	OTP_ResendWindow time.Duration
	TwilioSID        string
	TwilioToken      string
	TwilioFrom       string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	SMTPFromName     string
	CloudinaryURL    string
	CloudinaryFolder string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.Lifetime)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT lifetime: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.OTP.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	cfg := &Config{
		Port:             configFile.App.Port,
		GinMode:          configFile.App.GinMode,
		DSN:              env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:        env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          configFile.Redis.DB,
		JWTSecret:        env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:        configFile.JWT.Issuer,
		TokenLifetime:    tokenTTL,
		OTP_TTL:          otpTTL,
		OTP_Length:       configFile.OTP.Length,
		OTP_ResendWindow: resWnd,
		TwilioSID:        env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:      env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:       env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		SMTPHost:         env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:         configFile.SMTP.Port,
		SMTPUsername:     env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:     env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:         env("SMTP_FROM", configFile.SMTP.From),
		SMTPFromName:     configFile.SMTP.FromName,
		CloudinaryURL:    env("CLOUDINARY_URL", configFile.Cloudinary.URL),
		CloudinaryFolder: configFile.Cloudinary.Folder,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.OTP_Length <= 0 {
		cfg.OTP_Length = 6
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var configFile ConfigFile
	if err := yaml.Unmarshal(data, &configFile); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &configFile, nil
}
