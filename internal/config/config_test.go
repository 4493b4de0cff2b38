package config

import (
	"strings"
	"testing"
	"time"
)

func setDBEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_NAME", "inventory")
}

func TestFromEnvDefaults(t *testing.T) {
	setDBEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "40586" {
		t.Errorf("Port = %q, want 40586", cfg.Port)
	}
	if cfg.DBPort != "3306" {
		t.Errorf("DBPort = %q, want 3306", cfg.DBPort)
	}
	if cfg.DBMaxConns != MaxPoolSize {
		t.Errorf("DBMaxConns = %d, want %d", cfg.DBMaxConns, MaxPoolSize)
	}
	if cfg.ResetTokenTTL != 10*time.Minute {
		t.Errorf("ResetTokenTTL = %s", cfg.ResetTokenTTL)
	}
	if cfg.EventsEnabled {
		t.Error("events should be disabled by default")
	}
}

func TestFromEnvMissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "inventory")
	_, err := FromEnv()
	if err == nil || !strings.Contains(err.Error(), "DB_HOST") {
		t.Fatalf("err = %v, want missing DB_HOST", err)
	}
}

func TestFromEnvPoolBound(t *testing.T) {
	setDBEnv(t)
	for _, v := range []string{"0", "11", "lots"} {
		t.Setenv("DB_MAX_CONNS", v)
		if _, err := FromEnv(); err == nil {
			t.Errorf("DB_MAX_CONNS=%s: expected error", v)
		}
	}
	t.Setenv("DB_MAX_CONNS", "4")
	cfg, err := FromEnv()
	if err != nil || cfg.DBMaxConns != 4 {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

func TestAMQPURLPrecedence(t *testing.T) {
	setDBEnv(t)
	t.Setenv("AMQP_URL", "amqp://b/")
	t.Setenv("RABBITMQ_URL", "amqp://a/")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AMQPURL != "amqp://a/" {
		t.Errorf("AMQPURL = %q", cfg.AMQPURL)
	}
}

func TestRateLimitNormalize(t *testing.T) {
	c := RateLimitConfig{Capacity: 0, RefillTokens: 0, RefillInterval: 0, TTL: time.Second}.normalize()
	if c.Capacity != 1 || c.RefillTokens != 1 || c.RefillInterval != time.Second {
		t.Fatalf("unexpected %+v", c)
	}
	if c.TTL != 5*time.Second {
		t.Errorf("TTL = %s, want 5s", c.TTL)
	}
}
