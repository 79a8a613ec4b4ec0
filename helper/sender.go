package helper

import (
	"fmt"
	"log"

	"booking_console/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender notifies requesters when their booking gets cancelled from
// the console. Optional: without BOT_TOKEN the console simply does not send.
type TelegramSender struct {
	botApi *tgbotapi.BotAPI
}

func NewTelegramSender() *TelegramSender {
	token := config.Config("BOT_TOKEN")
	if token == "" {
		log.Println("BOT_TOKEN not set, telegram notifications disabled")
		return nil
	}

	botApi, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("could not connect to telegram api: %v", err)
		return nil
	}
	botApi.Debug = false

	return &TelegramSender{botApi: botApi}
}

func (t *TelegramSender) SendCancellationNotice(telegramID int, eventTitle string) {
	text := fmt.Sprintf("Your booking for event (%s) was cancelled by an administrator", eventTitle)
	msg := tgbotapi.NewMessage(int64(telegramID), text)
	if _, err := t.botApi.Send(msg); err != nil {
		log.Printf("could not send message to telegram user %d: %v", telegramID, err)
		return
	}
	log.Printf("cancellation notice sent to telegram user %d", telegramID)
}
