package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/pkg/validator"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const myWordsLimit = 10

const addUsage = "Usage: /add Haus = house; home (category is optional)"

type WordSI interface {
	WordPairs(ctx context.Context) ([]models.WordPair, error)
	CreateWordPair(ctx context.Context, in models.WordPairInput) (models.WordPair, error)
}

type WordT struct {
	bot     BotSender
	service WordSI
	log     *zap.Logger
}

func NewWordTAPI(bot BotSender, service WordSI, log *zap.Logger) *WordT {
	return &WordT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

// showMyWords lists the newest word pairs.
func (t *WordT) showMyWords(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pairs, err := t.service.WordPairs(ctx)
	if err != nil {
		t.log.Error("failed to load words", zap.Int64("chat_id", chatID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ Could not load your words. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatWords(pairs, len(pairs)))
	sendMessage(t.bot, t.log, msg)
}

func formatWords(pairs []models.WordPair, total int) string {
	if len(pairs) == 0 {
		return "📭 You have no words yet.\n" + addUsage
	}

	if len(pairs) > myWordsLimit {
		pairs = pairs[:myWordsLimit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 Your newest words (%d of %d):\n\n", len(pairs), total)
	for _, p := range pairs {
		fmt.Fprintf(&sb, "• %s → %s", p.GermanWord, p.EnglishTranslation)
		if c := p.CategoryValue(); c != "" {
			fmt.Fprintf(&sb, " [%s]", c)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// parseWordPair reads "german = english; category".
func parseWordPair(args string) (models.WordPairInput, bool) {
	german, rest, ok := strings.Cut(args, "=")
	if !ok {
		return models.WordPairInput{}, false
	}

	english, category, hasCategory := strings.Cut(rest, ";")
	in := models.WordPairInput{
		GermanWord:         strings.TrimSpace(german),
		EnglishTranslation: strings.TrimSpace(english),
	}
	if hasCategory {
		c := strings.TrimSpace(category)
		in.Category = &c
	}
	return in, true
}

func (t *WordT) addWord(chatID int64, args string) {
	in, ok := parseWordPair(args)
	if !ok {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, addUsage))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pair, err := t.service.CreateWordPair(ctx, in)
	if err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ "+validationText(verr)+"\n"+addUsage))
			return
		}
		t.log.Error("failed to add word", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Could not save the word. Try again later."))
		return
	}

	text := fmt.Sprintf("✅ Saved: %s → %s", pair.GermanWord, pair.EnglishTranslation)
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, text))
}

func validationText(verr *validator.ValidationError) string {
	msgs := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "\n")
}
