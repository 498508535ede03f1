package pipeline

import "go.uber.org/zap"

type Channel string

const (
	ChannelSuccess Channel = "success"
	ChannelError   Channel = "error"
	ChannelWarning Channel = "warning"
	ChannelInfo    Channel = "info"
)

// Notifier is the narrow port to the presentation layer. The pipeline only
// reports observable outcomes; how they are rendered is not its concern.
type Notifier interface {
	ShowMessage(channel Channel, title, message string)
	FieldError(field, message string)
	FieldSuccess(field string)
	ClearField(field string)
	FocusField(field string)
	ShowLoading(message string)
	HideLoading()
	PriceChanged(amount int)
}

// LogNotifier renders notifications through zap; the CLI uses it in place of
// a real presentation layer.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ShowMessage(channel Channel, title, message string) {
	log := n.logger.Info
	if channel == ChannelError {
		log = n.logger.Error
	} else if channel == ChannelWarning {
		log = n.logger.Warn
	}
	log(title, zap.String("channel", string(channel)), zap.String("message", message))
}

func (n *LogNotifier) FieldError(field, message string) {
	n.logger.Warn("field error", zap.String("field", field), zap.String("message", message))
}

func (n *LogNotifier) FieldSuccess(field string) {
	n.logger.Debug("field ok", zap.String("field", field))
}

func (n *LogNotifier) ClearField(field string) {
	n.logger.Debug("field cleared", zap.String("field", field))
}

func (n *LogNotifier) FocusField(field string) {
	n.logger.Info("focus field", zap.String("field", field))
}

func (n *LogNotifier) ShowLoading(message string) {
	n.logger.Info(message)
}

func (n *LogNotifier) HideLoading() {}

func (n *LogNotifier) PriceChanged(amount int) {
	n.logger.Info("price updated", zap.Int("amount", amount))
}
