package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Decode(v)
	if err != nil {
		t.Fatalf("decode defaults failed: %v", err)
	}
	if cfg.GiftMessage.MaxLength != 0 {
		t.Fatalf("gift message max length default want 0 got %d", cfg.GiftMessage.MaxLength)
	}
	if !cfg.GiftMessage.Enabled {
		t.Fatalf("gift message should be enabled by default")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("database driver want sqlite got %s", cfg.Database.Driver)
	}
	if cfg.Security.NonceTTLHours != 24 {
		t.Fatalf("nonce ttl want 24 got %d", cfg.Security.NonceTTLHours)
	}
	if cfg.Queue.Queues["default"] != 10 {
		t.Fatalf("default queue weight want 10 got %d", cfg.Queue.Queues["default"])
	}
}

func TestDecodeEnvOverride(t *testing.T) {
	t.Setenv("GIFTMESSAGE_MAX_LENGTH", "80")
	t.Setenv("GIFTMESSAGE_LABEL", "Card Note")

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg, err := Decode(v)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.GiftMessage.MaxLength != 80 {
		t.Fatalf("max length want 80 got %d", cfg.GiftMessage.MaxLength)
	}
	if cfg.GiftMessage.Label != "Card Note" {
		t.Fatalf("label want Card Note got %s", cfg.GiftMessage.Label)
	}
}
