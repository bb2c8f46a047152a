package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"
)

const (
	// DisabledEnvVar turns telemetry off when set to "true"
	DisabledEnvVar = "FABKIT_TELEMETRY_DISABLED"

	// DebugEnvVar traces telemetry to stderr when set to "true"
	DebugEnvVar = "FABKIT_TELEMETRY_DEBUG"

	sendTimeout = 5 * time.Second
)

const reportUserEventMutation = `
mutation ReportUserEvent($event: UserEventInput!) {
  reportUserEvent(event: $event) {
    success
    message
  }
}
`

// Reporter sends anonymous usage events. Failures never reach the caller.
type Reporter struct {
	client  *graphql.Client
	log     *zerolog.Logger
	version string

	once    sync.Once
	machine MachineInfo
	actor   *ActorInfo
}

// Option configures a Reporter.
type Option func(*reporterConfig)

type reporterConfig struct {
	httpClient *http.Client
}

// WithHTTPClient sets the client used for the GraphQL transport.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *reporterConfig) {
		cfg.httpClient = c
	}
}

// NewReporter reports to endpoint. An empty endpoint yields a reporter that
// sends nothing.
func NewReporter(endpoint, version string, log *zerolog.Logger, opts ...Option) *Reporter {
	if endpoint == "" {
		return &Reporter{log: log, version: version}
	}

	cfg := reporterConfig{httpClient: http.DefaultClient}
	for _, o := range opts {
		o(&cfg)
	}

	client := graphql.NewClient(endpoint, graphql.WithHTTPClient(cfg.httpClient))
	client.Log = func(s string) {
		log.Debug().Str("client", "GraphQL").Msg(s)
	}

	return &Reporter{
		client:  client,
		log:     log,
		version: version,
	}
}

// SendTelemetryEvent reports name with properties. It returns once the
// event is delivered, rejected or timed out.
func (r *Reporter) SendTelemetryEvent(ctx context.Context, name string, properties map[string]string) {
	defer func() {
		if rec := recover(); rec != nil {
			debugLog("sender panic: %v", rec)
		}
	}()

	if isTelemetryDisabled() {
		debugLog("telemetry disabled via environment variable")
		return
	}
	if r.client == nil {
		debugLog("no telemetry endpoint configured")
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	event := r.buildEvent(name, properties)
	debugLog("emitting telemetry event: name=%s id=%s", event.Name, event.ID)

	req := graphql.NewRequest(reportUserEventMutation)
	req.Header.Set("User-Agent", "fabkit/"+r.version)
	req.Var("event", event)

	var resp ReportUserEventResponse
	if err := r.client.Run(sendCtx, req, &resp); err != nil {
		debugLog("telemetry request failed: %v", err)
		r.log.Debug().Err(err).Str("event", name).Msg("Telemetry not delivered")
		return
	}
	debugLog("telemetry request succeeded: success=%v, message=%s", resp.ReportUserEvent.Success, resp.ReportUserEvent.Message)
}

func (r *Reporter) buildEvent(name string, properties map[string]string) UserEventInput {
	r.once.Do(func() {
		r.machine = CollectMachineInfo()
		r.actor = CollectActorInfo()
	})
	return UserEventInput{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: properties,
		CliVersion: r.version,
		Machine:    r.machine,
		Actor:      r.actor,
	}
}

func isTelemetryDisabled() bool {
	return os.Getenv(DisabledEnvVar) == "true"
}

func isTelemetryDebugEnabled() bool {
	return os.Getenv(DebugEnvVar) == "true"
}

func debugLog(format string, args ...interface{}) {
	if isTelemetryDebugEnabled() {
		fmt.Fprintf(os.Stderr, "[TELEMETRY DEBUG] "+format+"\n", args...)
	}
}
