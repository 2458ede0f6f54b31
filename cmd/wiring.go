package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/altcast/lightaudit/internal/audit"
	"github.com/altcast/lightaudit/internal/probe"
	jsonstore "github.com/altcast/lightaudit/internal/store/json"
	"github.com/altcast/lightaudit/internal/store/postgres"
)

// newStore builds the report store selected by store.backend.
func newStore(ctx context.Context) (audit.Repository, error) {
	switch backend := viper.GetString("store.backend"); backend {
	case "json":
		return jsonstore.New(viper.GetString("store.path"))
	case "postgres":
		dsn := viper.GetString("store.dsn")
		if dsn == "" {
			return nil, fmt.Errorf("store.dsn is required for the postgres backend")
		}
		return postgres.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want json or postgres)", backend)
	}
}

// newProbeClient applies the scan.* settings to a probe client.
func newProbeClient() *probe.Client {
	client := probe.NewClient()
	if secs := viper.GetInt("scan.timeout_secs"); secs > 0 {
		client.Timeout = time.Duration(secs) * time.Second
	}
	if secs := viper.GetInt("scan.probe_timeout_secs"); secs > 0 {
		client.ProbeTimeout = time.Duration(secs) * time.Second
	}
	if ua := viper.GetString("scan.user_agent"); ua != "" {
		client.UserAgent = ua
	}
	return client
}

func newEngine(st audit.Repository) *audit.Engine {
	return audit.NewEngine(newProbeClient(), st, logger)
}
