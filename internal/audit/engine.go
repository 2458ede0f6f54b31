package audit

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/altcast/lightaudit/internal/probe"
)

// Engine runs light audits: normalize the target, probe it once, score the
// catalogue, persist the record. Run never returns a Go error; every failure
// path converts to the sentinel error result.
type Engine struct {
	probe  *probe.Client
	store  Repository
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewEngine wires an engine. A nil logger falls back to a no-op.
func NewEngine(client *probe.Client, st Repository, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{
		probe:  client,
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// normalizeTargetURL prepends https:// when the input lacks a scheme.
func normalizeTargetURL(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// Run audits a single target URL. The returned result is always well formed:
// ten findings on success, the SCAN_TIMEOUT sentinel on any failure.
func (e *Engine) Run(ctx context.Context, rawURL string) *Result {
	start := e.now()
	elapsed := func() int64 { return e.now().Sub(start).Milliseconds() }

	target := normalizeTargetURL(rawURL)
	slug := GenerateSlug(target, e.now())

	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		e.logger.Warnw("target url rejected", "url", rawURL, "error", err)
		return ErrorResult(slug, elapsed())
	}

	resp, err := e.probe.FetchPage(ctx, target)
	if err != nil {
		e.logger.Warnw("primary fetch failed", "url", target, "error", err)
		return ErrorResult(slug, elapsed())
	}

	siteType := DetectSiteType(resp.Body)
	industry := DetectIndustry(target, resp.Body)
	pageInfo := ExtractPageInfo(resp.Body)

	// The well-known probes are independent of each other; run both inside
	// their own budgets before scoring needs them.
	baseURL := u.Scheme + "://" + u.Host
	var (
		wg          sync.WaitGroup
		securityTxt probe.SecurityTxtResult
		robotsTxt   probe.RobotsTxtResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		securityTxt = e.probe.CheckSecurityTxt(ctx, baseURL)
	}()
	go func() {
		defer wg.Done()
		robotsTxt = e.probe.CheckRobotsTxt(ctx, baseURL)
	}()
	wg.Wait()

	checks, total, max := runChecks(checkInput{
		Headers:     resp.Headers,
		HTTPS:       strings.HasPrefix(target, "https"),
		SiteType:    siteType,
		Industry:    industry,
		SecurityTxt: securityTxt,
		RobotsTxt:   robotsTxt,
	})
	percentage, status := aggregate(checks, total, max)

	result := &Result{
		Status:           status,
		Slug:             slug,
		Vulnerabilities:  checks,
		ScanDuration:     elapsed(),
		SiteType:         siteType,
		IndustryCategory: industry,
		TotalScore:       total,
		MaxScore:         max,
		ScorePercentage:  percentage,
	}

	rec := &Record{
		ID:          uuid.NewString(),
		TargetURL:   target,
		CompletedAt: e.now().UTC(),
		PageTitle:   pageInfo.Title,
		Generator:   pageInfo.Generator,
		Result:      *result,
	}
	if err := e.store.Save(ctx, rec); err != nil {
		e.logger.Errorw("persist audit failed", "slug", slug, "error", err)
		return ErrorResult(slug, elapsed())
	}

	e.logger.Infow("audit complete",
		"slug", slug,
		"status", status,
		"score", percentage,
		"site_type", siteType,
		"industry", industry,
		"duration_ms", result.ScanDuration,
	)
	return result
}
