package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// Config carries broker settings.
type Config struct {
	Brokers      []string      `mapstructure:"brokers" yaml:"brokers"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if len(c.Brokers) == 0 {
		c.Brokers = []string{"localhost:9092"}
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 3 * time.Second
	}
}

// conceptAnalyzedEvent is the wire shape of a scoring event.  The full
// result is deliberately not published; consumers re-query if they need it.
type conceptAnalyzedEvent struct {
	ResultID  common.ID        `json:"resultId"`
	Genre     string           `json:"genre"`
	Score     int              `json:"score"`
	Verdict   string           `json:"verdict"`
	RiskTier  string           `json:"riskTier"`
	Timestamp common.Timestamp `json:"timestamp"`
}

type versionSavedEvent struct {
	VersionID     common.ID        `json:"versionId"`
	ProjectID     common.ProjectID `json:"projectId"`
	VersionNumber int              `json:"versionNumber"`
	Score         int              `json:"score"`
	ScoreDelta    *int             `json:"scoreDelta,omitempty"`
	Timestamp     common.Timestamp `json:"timestamp"`
}

// Producer publishes engine events.  It satisfies both the analysis
// service's EventPublisher and the development service's VersionEvents.
type Producer struct {
	analyzed *kafka.Writer
	saved    *kafka.Writer
	timeout  time.Duration
	logger   logging.Logger
}

// NewProducer constructs writers for both topics.
func NewProducer(cfg Config, logger logging.Logger) *Producer {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		}
	}
	return &Producer{
		analyzed: newWriter(TopicConceptAnalyzed),
		saved:    newWriter(TopicVersionSaved),
		timeout:  cfg.WriteTimeout,
		logger:   logger.Named("kafka"),
	}
}

func (p *Producer) publish(ctx context.Context, w *kafka.Writer, key string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("event encode failed", logging.String("topic", w.Topic), logging.Err(err))
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := w.WriteMessages(writeCtx, kafka.Message{Key: []byte(key), Value: raw}); err != nil {
		p.logger.Warn("event publish failed", logging.String("topic", w.Topic), logging.Err(err))
	}
}

// ConceptAnalyzed publishes a scoring event.
func (p *Producer) ConceptAnalyzed(ctx context.Context, r *analysis.AnalysisResult) {
	p.publish(ctx, p.analyzed, string(r.ID), conceptAnalyzedEvent{
		ResultID:  r.ID,
		Genre:     string(r.Concept.Genre),
		Score:     r.FinalScore,
		Verdict:   string(r.Verdict.Verdict),
		RiskTier:  string(r.Risk.Tier),
		Timestamp: r.Timestamp,
	})
}

// VersionSaved publishes a persistence event.
func (p *Producer) VersionSaved(ctx context.Context, v version.ConceptVersion) {
	p.publish(ctx, p.saved, string(v.ProjectID), versionSavedEvent{
		VersionID:     v.VersionID,
		ProjectID:     v.ProjectID,
		VersionNumber: v.VersionNumber,
		Score:         v.Score,
		ScoreDelta:    v.ScoreDelta,
		Timestamp:     v.Timestamp,
	})
}

// Close flushes and closes both writers.
func (p *Producer) Close() error {
	if err := p.analyzed.Close(); err != nil {
		return err
	}
	return p.saved.Close()
}
