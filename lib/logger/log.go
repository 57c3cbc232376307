package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/artie-labs/sampler/lib/config"
	"github.com/artie-labs/sampler/lib/redact"
)

const sentryFlushTimeout = 2 * time.Second

func NewLogger(settings *config.Settings) (*slog.Logger, bool) {
	tintLogLevel := slog.LevelInfo
	if settings != nil && settings.VerboseLogging {
		tintLogLevel = slog.LevelDebug
	}

	var handler slog.Handler = tint.NewHandler(os.Stderr, &tint.Options{
		Level:   tintLogLevel,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})

	var loggingToSentry bool
	if settings != nil && settings.Config.Reporting.Sentry != nil && settings.Config.Reporting.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:        settings.Config.Reporting.Sentry.DSN,
			BeforeSend: scrubEvent,
		}); err != nil {
			slog.New(handler).Warn("Failed to enable Sentry output", slog.Any("err", err))
		} else {
			handler = slogmulti.Fanout(
				handler,
				slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
			)
			loggingToSentry = true
		}
	}

	return slog.New(handler), loggingToSentry
}

func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	// Sentry sends events asynchronously, give it a chance to deliver the error before we exit.
	sentry.Flush(sentryFlushTimeout)
	os.Exit(1)
}

// scrubEvent strips credentials from an event before it leaves the process.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil {
		return nil
	}

	event.Message = redact.ScrubString(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = redact.ScrubString(event.Exception[i].Value)
	}

	for key, value := range event.Extra {
		if str, ok := value.(string); ok {
			event.Extra[key] = redact.ScrubString(str)
		}
	}

	return event
}
