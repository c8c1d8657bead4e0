// Command sigdemo signs a sample request envelope and prints the encrypted
// signature payload. It exists to exercise the full signing path end to end.
package main

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/alex0twery0/POGOLib/internal/config"
	"github.com/alex0twery0/POGOLib/protocol"
	"github.com/alex0twery0/POGOLib/session"
	"github.com/alex0twery0/POGOLib/signature"
)

func main() {
	if err := run(); err != nil {
		slog.Error("sigdemo failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	var sess *session.Session
	if cfg.SeedSet {
		sess = session.NewSeeded(cfg.Latitude, cfg.Longitude, cfg.Seed)
	} else {
		sess = session.New(cfg.Latitude, cfg.Longitude)
	}
	log.Info("session created",
		"lat", sess.Latitude,
		"lng", sess.Longitude,
		"device", sess.Device.DeviceModel,
	)

	engine, err := signature.NewEngine(sess, signature.WithLogger(log))
	if err != nil {
		return err
	}

	env := &protocol.RequestEnvelope{
		RequestID: 1,
		Latitude:  sess.Latitude,
		Longitude: sess.Longitude,
		AuthInfo:  &protocol.AuthInfo{Provider: "ptc", Token: "demo-token"},
		Requests: []*protocol.Request{
			{Type: 106, Payload: []byte("get-map-objects")},
			{Type: 2, Payload: []byte("get-player")},
		},
	}

	sess.Lock()
	err = engine.Sign(env)
	sess.Unlock()
	if err != nil {
		return err
	}

	out := env.PlatformRequests[0]
	log.Info("envelope signed",
		"type", out.Type,
		"ciphertext_bytes", len(out.RequestMessage),
		"accuracy", env.Accuracy,
		"ms_since_last_fix", env.MsSinceLastLocationFix,
	)
	fmt.Println(base64.StdEncoding.EncodeToString(out.RequestMessage))
	return nil
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}
