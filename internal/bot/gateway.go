package bot

import (
	"context"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DeliveryError reports a failed channel upload. The session keeps its
// prepared audio so the operator can try again.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "delivery: " + e.Err.Error() }
func (e *DeliveryError) Unwrap() error { return e.Err }

// Gateway posts finished audio to the broadcast channel.
type Gateway struct {
	api       *tgbotapi.BotAPI
	channelID int64
}

func NewGateway(api *tgbotapi.BotAPI, channelID int64) *Gateway {
	return &Gateway{api: api, channelID: channelID}
}

func (g *Gateway) Publish(ctx context.Context, path, filename, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return &DeliveryError{Err: err}
	}
	defer f.Close()

	audio := tgbotapi.NewAudio(g.channelID, tgbotapi.FileReader{Name: filename, Reader: f})
	audio.Caption = caption
	if _, err := g.api.Send(audio); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
