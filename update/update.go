package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/fabkit-dev/fabkit/internal/constants"
	"github.com/fabkit-dev/fabkit/internal/ui"
)

const (
	DefaultReleaseURL = "https://api.github.com/repos/fabkit-dev/fabkit/releases/latest"
	releasesPageURL   = "https://github.com/fabkit-dev/fabkit/releases"

	// DisabledEnvVar turns the check off; ForceEnvVar checks on every run,
	// development builds included.
	DisabledEnvVar = "FABKIT_NO_UPDATE_CHECK"
	ForceEnvVar    = "FABKIT_FORCE_UPDATE_CHECK"

	timeout       = 2 * time.Second
	cacheDuration = 24 * time.Hour
	cacheFileName = "update.json"
)

type githubRelease struct {
	TagName string `json:"tag_name"`
}

type cacheState struct {
	LatestVersion string    `json:"latest_version"`
	LastCheck     time.Time `json:"last_check"`
}

// Checker compares the running version with the latest GitHub release and
// prints a notice when a newer one exists. The result is cached for a day.
type Checker struct {
	log        *zerolog.Logger
	out        io.Writer
	client     *http.Client
	releaseURL string
	cachePath  string
	now        func() time.Time
}

type Option func(*Checker)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

func WithReleaseURL(url string) Option {
	return func(c *Checker) { c.releaseURL = url }
}

func WithCachePath(path string) Option {
	return func(c *Checker) { c.cachePath = path }
}

func WithOutput(out io.Writer) Option {
	return func(c *Checker) { c.out = out }
}

func NewChecker(log *zerolog.Logger, opts ...Option) *Checker {
	c := &Checker{
		log:        log,
		out:        os.Stderr,
		client:     &http.Client{Timeout: timeout},
		releaseURL: DefaultReleaseURL,
		now:        time.Now,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.cachePath = filepath.Join(home, constants.DefaultConfigDirName, cacheFileName)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) loadCache() cacheState {
	var state cacheState
	if c.cachePath == "" {
		return state
	}
	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Debug().Err(err).Msg("Failed to read update cache")
		}
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		c.log.Debug().Err(err).Msg("Update cache corrupted, ignoring")
		return cacheState{}
	}
	return state
}

func (c *Checker) saveCache(state cacheState) error {
	if c.cachePath == "" {
		return nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.cachePath), 0o750); err != nil {
		return err
	}
	return os.WriteFile(c.cachePath, data, 0o640)
}

func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	c.log.Debug().Msgf("Fetching latest release from %s", c.releaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releaseURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "fabkit-update-check")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github API returned non-200 status: %s", resp.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub API response: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("github API response contained no tag_name")
	}
	return release.TagName, nil
}

// Check never fails; problems are logged at debug level. It reports whether
// a notice was printed.
func (c *Checker) Check(ctx context.Context, currentVersion string) bool {
	if os.Getenv(DisabledEnvVar) != "" {
		return false
	}
	force := os.Getenv(ForceEnvVar) == "1"

	current, err := semver.NewVersion(strings.TrimSpace(currentVersion))
	if err != nil {
		if !force {
			c.log.Debug().Msgf("%s is not a release build, skipping update check", currentVersion)
			return false
		}
		current = semver.MustParse("0.0.0")
	}

	cache := c.loadCache()
	latest := cache.LatestVersion

	now := c.now()
	if force || now.Sub(cache.LastCheck) > cacheDuration {
		fetched, err := c.fetchLatestVersion(ctx)
		if err != nil {
			c.log.Debug().Err(err).Msg("Failed to fetch latest version")
		} else {
			latest = fetched
			if err := c.saveCache(cacheState{LatestVersion: fetched, LastCheck: now}); err != nil {
				c.log.Debug().Err(err).Msg("Failed to save update cache")
			}
		}
	}

	if latest == "" {
		return false
	}
	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		c.log.Debug().Err(err).Msgf("Failed to parse latest tag %q", latest)
		return false
	}
	if !latestVersion.GreaterThan(current) {
		return false
	}

	ui.Warning(c.out, fmt.Sprintf("Update available! You're running %s, but %s is the latest.", current, latestVersion))
	ui.Dim(c.out, "Download it from "+releasesPageURL)
	return true
}
