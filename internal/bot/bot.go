// Package bot is the Telegram presentation layer: it classifies inbound
// updates, forwards them to the session machine and renders its responses.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"surahbot/internal/session"
)

const (
	promptStart = "Выберите режим работы:"

	promptQuranMode = "Режим Корана (Хусари) активирован.\n\n" +
		"Теперь укажите:\n" +
		"1. Номер суры (/surah номер)\n" +
		"2. Номер аята (просто отправьте текст)\n" +
		"3. Отправьте видео для извлечения аудио"

	promptRegularMode = "Обычный режим активирован.\n\n" +
		"Теперь укажите:\n" +
		"1. Название трека (/title название)\n" +
		"2. Исполнителя (/artist имя)\n" +
		"3. Отправьте аудиофайл для редактирования метаданных"

	promptChooseColor = "Выберите цвет перед подтверждением:"

	replyNoMode        = "Сначала выберите режим работы: /start"
	replyCleared       = "Все данные успешно сброшены!"
	replySent          = "Аудиофайл успешно отправлен!"
	replyNoAudio       = "Нет аудиофайла для отправки!"
	replySendFailed    = "Ошибка при отправке аудио."
	replyCancelled     = "Отправка аудио отменена."
	replyVideoFailed   = "Произошла ошибка при обработке видео."
	replyAudioFailed   = "Произошла ошибка при обработке аудио."
	replyCallbackError = "Произошла ошибка при обработке. Пожалуйста, попробуйте снова."
)

type Bot struct {
	api     *tgbotapi.BotAPI
	machine *session.Machine
}

func New(api *tgbotapi.BotAPI, machine *session.Machine) *Bot {
	return &Bot{api: api, machine: machine}
}

// Run consumes updates until the channel closes. Handlers run inline, one
// at a time: there is a single session and a handler suspended on the
// pipeline must not interleave with another event.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		switch {
		case update.Message != nil:
			b.handleMessage(update.Message)
		case update.CallbackQuery != nil:
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case msg.Video != nil:
		if b.machine.Mode() == session.ModeQuran {
			b.handleMedia(msg.Chat.ID, msg.Video.FileID, replyVideoFailed)
		}
	case msg.Audio != nil:
		if b.machine.Mode() == session.ModeRegular {
			b.handleMedia(msg.Chat.ID, msg.Audio.FileID, replyAudioFailed)
		}
	case msg.Text != "":
		b.handleFreeText(msg.Chat.ID, msg.Text)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := msg.CommandArguments()

	switch msg.Command() {
	case "start":
		reply := tgbotapi.NewMessage(chatID, promptStart)
		reply.ReplyMarkup = modeKeyboard()
		b.send(reply)

	case "surah":
		n, err := b.machine.SetTrack(args)
		switch {
		case errors.Is(err, session.ErrWrongMode):
			b.reply(chatID, "Эта команда доступна только в режиме Корана (Хусари)")
		case err != nil:
			b.replyMarkdown(chatID, "Пожалуйста, укажите корректный номер суры, например:\n`/surah 5`")
		default:
			b.replyf(chatID, "Номер суры обновлен на: \"%d\"", n)
		}

	case "artist":
		err := b.machine.SetArtist(args)
		switch {
		case errors.Is(err, session.ErrWrongMode):
			b.reply(chatID, replyNoMode)
		case err != nil:
			b.reply(chatID, "Пожалуйста, укажите имя исполнителя, например:\n`/artist Artist Name`")
		default:
			b.replyf(chatID, "Исполнитель обновлен на: \"%s\"", strings.TrimSpace(args))
		}

	case "title":
		err := b.machine.SetTitle(args)
		switch {
		case errors.Is(err, session.ErrWrongMode):
			b.reply(chatID, "Эта команда доступна только в обычном режиме")
		case err != nil:
			b.reply(chatID, "Пожалуйста, укажите название трека, например:\n`/title Song Name`")
		default:
			b.replyf(chatID, "Название трека обновлено на: \"%s\"", strings.TrimSpace(args))
		}

	case "clear_all":
		b.machine.Reset()
		b.reply(chatID, replyCleared)

	default:
		log.Printf("unknown command: /%s", msg.Command())
	}
}

func (b *Bot) handleFreeText(chatID int64, text string) {
	err := b.machine.SetVerse(text)
	switch {
	case errors.Is(err, session.ErrWrongMode):
		// free text only means something in Quran mode
	case err != nil:
		b.reply(chatID, "Пожалуйста, отправьте не пустое сообщение.")
	default:
		b.replyf(chatID, "Номер аята успешно обновлен на: \"%s\"", strings.TrimSpace(text))
	}
}

// handleMedia runs the submission pipeline behind a transient indicator.
func (b *Bot) handleMedia(chatID int64, fileID, failureReply string) {
	indicator, indicatorErr := b.api.Send(tgbotapi.NewMessage(chatID, "⏳"))

	review, err := b.machine.SubmitMedia(context.Background(), fileID)

	if indicatorErr == nil {
		b.request(tgbotapi.NewDeleteMessage(chatID, indicator.MessageID))
	}

	if err != nil {
		var pre *session.PreconditionError
		switch {
		case errors.As(err, &pre):
			b.reply(chatID, missingFieldsReply(pre.Missing))
		case errors.Is(err, session.ErrWrongMode):
			// upload without a mode selected, nothing to do
		default:
			log.Printf("submit %s: %v", fileID, err)
			b.reply(chatID, failureReply)
		}
		return
	}

	if review.NeedsColor {
		reply := tgbotapi.NewMessage(chatID, promptChooseColor)
		reply.ReplyMarkup = colorKeyboard()
		b.send(reply)
		return
	}
	b.sendReview(chatID, review)
}

func (b *Bot) handleCallback(q *tgbotapi.CallbackQuery) {
	b.request(tgbotapi.NewCallback(q.ID, ""))
	if q.Message == nil {
		return
	}
	chatID := q.Message.Chat.ID

	switch data := q.Data; {
	case data == "mode_hussary":
		b.machine.SelectMode(session.ModeQuran)
		b.send(tgbotapi.NewEditMessageText(chatID, q.Message.MessageID, promptQuranMode))

	case data == "mode_regular":
		b.machine.SelectMode(session.ModeRegular)
		b.send(tgbotapi.NewEditMessageText(chatID, q.Message.MessageID, promptRegularMode))

	case strings.HasPrefix(data, "color_"):
		b.request(tgbotapi.NewDeleteMessage(chatID, q.Message.MessageID))
		review, err := b.machine.ChooseColor(strings.TrimPrefix(data, "color_"))
		if err != nil {
			log.Printf("choose color %q: %v", data, err)
			b.reply(chatID, replyCallbackError)
			return
		}
		b.sendReview(chatID, review)

	case data == "send_audio":
		b.request(tgbotapi.NewDeleteMessage(chatID, q.Message.MessageID))
		err := b.machine.Confirm(context.Background())
		switch {
		case err == nil:
			b.reply(chatID, replySent)
		case errors.Is(err, session.ErrNoAudio), errors.Is(err, session.ErrWrongState):
			b.reply(chatID, replyNoAudio)
		default:
			log.Printf("confirm: %v", err)
			b.reply(chatID, replySendFailed)
		}

	case data == "cancel_audio":
		b.request(tgbotapi.NewDeleteMessage(chatID, q.Message.MessageID))
		if err := b.machine.Cancel(); err != nil {
			log.Printf("cancel: %v", err)
		}
		b.reply(chatID, replyCancelled)
	}
}

// sendReview presents the tagged audio with approve/cancel choices.
func (b *Bot) sendReview(chatID int64, review *session.Review) {
	f, err := os.Open(review.AudioPath)
	if err != nil {
		log.Printf("open review audio %s: %v", review.AudioPath, err)
		b.reply(chatID, replyCallbackError)
		return
	}
	defer f.Close()

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FileReader{Name: review.FileName, Reader: f})
	audio.Caption = review.Caption
	audio.ReplyMarkup = confirmKeyboard()
	b.send(audio)
}

func missingFieldsReply(missing []string) string {
	lines := []string{"Пожалуйста, заполните все данные перед загрузкой файла:"}
	for _, field := range missing {
		switch field {
		case session.FieldTrack:
			lines = append(lines, "- Номер суры (/surah)")
		case session.FieldVerse:
			lines = append(lines, "- Номер аята (отправьте текст)")
		case session.FieldTitle:
			lines = append(lines, "- Название трека (/title)")
		case session.FieldArtist:
			lines = append(lines, "- Исполнитель (/artist)")
		}
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyf(chatID int64, format string, args ...any) {
	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf(format, args...)))
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("send: %v", err)
	}
}

func (b *Bot) request(c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		log.Printf("request: %v", err)
	}
}
