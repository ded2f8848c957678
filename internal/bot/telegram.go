package bot

import (
	"context"

	"github.com/DanRulev/wortschatz/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	WordSI
	QuizSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api  *tgbotapi.BotAPI
	bot  BotSender
	word *WordT
	quiz *QuizT
	log  *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegramAPI(api, service, cache, log)
	t.api = api
	return t, nil
}

func newTelegramAPI(bot BotSender, service ServiceI, cache *cache.Cache, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:  bot,
		word: NewWordTAPI(bot, service, log),
		quiz: NewQuizTAPI(bot, cache, service, log),
		log:  log,
	}
}

// Start polls for updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("telegram bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("message sent", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
