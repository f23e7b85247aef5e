package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"surahbot/internal/session"
)

func modeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Режим Корана (Хусари)", "mode_hussary"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Режим обычного аудио", "mode_regular"),
		),
	)
}

// colorKeyboard lays the fixed marker set out in two rows.
func colorKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, c := range session.Colors {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c, "color_"+c))
		if i == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	rows = append(rows, row)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Отправить", "send_audio"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "cancel_audio"),
		),
	)
}
