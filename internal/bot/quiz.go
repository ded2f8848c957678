package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	StartQuiz(ctx context.Context) (*quiz.Session, error)
	SubmitAnswer(ctx context.Context, id, answer string) (quiz.Step, error)
	SkipQuestion(ctx context.Context, id string) (quiz.Step, error)
	AbandonQuiz(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.Stats, error)
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

func (t *QuizT) inQuiz(chatID int64) bool {
	id, ok := t.cache.ChatSession(chatID)
	if !ok {
		return false
	}
	if _, exists := t.cache.Session(id); !exists {
		t.cache.UnbindChat(chatID)
		return false
	}
	return true
}

// sendNewQuiz starts a quiz for the chat, dropping any quiz it was still running.
func (t *QuizT) sendNewQuiz(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if id, ok := t.cache.ChatSession(chatID); ok {
		if err := t.service.AbandonQuiz(ctx, id); err != nil && !errors.Is(err, models.ErrSessionNotFound) {
			t.log.Warn("failed to abandon previous quiz", zap.String("session_id", id), zap.Error(err))
		}
		t.cache.UnbindChat(chatID)
	}

	session, err := t.service.StartQuiz(ctx)
	if err != nil {
		text := "❌ Could not start a quiz. Try again later."
		if errors.Is(err, models.ErrNotEnoughWords) {
			text = fmt.Sprintf("📭 A quiz needs at least %d words. Add more with /add first.", quiz.QuestionCount)
		} else {
			t.log.Error("failed to start quiz", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, text))
		return
	}

	t.cache.BindChat(chatID, session.ID)
	t.sendQuestion(chatID, session)
}

func (t *QuizT) sendQuestion(chatID int64, s *quiz.Session) {
	question, ok := s.Current()
	if !ok {
		return
	}
	answered, total := s.Progress()

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", callbackSkip),
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", callbackStop),
		),
	)

	text := fmt.Sprintf("❓ %d/%d How do you translate: %s", answered+1, total, question.GermanWord)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) processAnswer(chatID int64, answer string) {
	t.advance(chatID, func(ctx context.Context, id string) (quiz.Step, error) {
		return t.service.SubmitAnswer(ctx, id, answer)
	})
}

func (t *QuizT) skipQuestion(chatID int64) {
	t.advance(chatID, func(ctx context.Context, id string) (quiz.Step, error) {
		return t.service.SkipQuestion(ctx, id)
	})
}

func (t *QuizT) advance(chatID int64, move func(ctx context.Context, id string) (quiz.Step, error)) {
	id, ok := t.cache.ChatSession(chatID)
	if !ok {
		sendMessage(t.bot, t.log, t.noQuizMessage(chatID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := move(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyAnswer):
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "✍️ Type a translation or press Skip."))
		case errors.Is(err, models.ErrSessionNotFound), errors.Is(err, models.ErrQuizCompleted):
			t.cache.UnbindChat(chatID)
			sendMessage(t.bot, t.log, t.noQuizMessage(chatID))
		default:
			t.cache.UnbindChat(chatID)
			t.log.Error("failed to record answer", zap.Int64("chat_id", chatID), zap.String("session_id", id), zap.Error(err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Something went wrong, the quiz was stopped."))
		}
		return
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, feedbackText(step.Answer)))

	if step.Report != nil {
		t.cache.UnbindChat(chatID)
		msg := tgbotapi.NewMessage(chatID, reportText(step.Report))
		msg.ReplyMarkup = newQuizKeyboard()
		sendMessage(t.bot, t.log, msg)
		return
	}

	t.sendQuestion(chatID, step.Session)
}

func (t *QuizT) stopQuiz(chatID int64) {
	id, ok := t.cache.ChatSession(chatID)
	if !ok {
		sendMessage(t.bot, t.log, t.noQuizMessage(chatID))
		return
	}
	t.cache.UnbindChat(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.AbandonQuiz(ctx, id); err != nil && !errors.Is(err, models.ErrSessionNotFound) {
		t.log.Warn("failed to abandon quiz", zap.String("session_id", id), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, "⏹ Quiz stopped. Nothing was saved.")
	msg.ReplyMarkup = newQuizKeyboard()
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) sendStats(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := t.service.Stats(ctx)
	if err != nil {
		t.log.Error("failed to get stats", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Could not load your progress"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, statsText(stats))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) noQuizMessage(chatID int64) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, "🤷 There is no quiz running.")
	msg.ReplyMarkup = newQuizKeyboard()
	return msg
}

func newQuizKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 New quiz", callbackNewQuiz),
		),
	)
}

func feedbackText(a models.TestAnswer) string {
	switch {
	case a.IsCorrect:
		return "✅ Correct!"
	case a.UserAnswer == "":
		return "⏭ Skipped. Answer: " + a.CorrectAnswer
	default:
		return "❌ Wrong. Answer: " + a.CorrectAnswer
	}
}

func reportText(r *models.Report) string {
	var sb strings.Builder

	verdict := "🎉 Passed!"
	if !r.Result.IsPassed() {
		verdict = "🔁 Not this time, try again."
	}
	fmt.Fprintf(&sb, "%s\n%d of %d correct (%d%%) in %ds\n",
		verdict, r.Result.CorrectAnswers, r.Result.TotalQuestions, r.Result.Accuracy(), r.Result.Duration)

	var missed []string
	for i, a := range r.Answers {
		if a.IsCorrect || i >= len(r.Questions) {
			continue
		}
		missed = append(missed, fmt.Sprintf("• %s → %s", r.Questions[i].GermanWord, a.CorrectAnswer))
	}
	if len(missed) > 0 {
		sb.WriteString("\nRepeat these:\n")
		sb.WriteString(strings.Join(missed, "\n"))
	}
	return sb.String()
}

func statsText(s models.Stats) string {
	return fmt.Sprintf("📊 *Your progress*\n\n"+
		"Words: %d\n"+
		"Quizzes completed: %d\n"+
		"Quizzes passed: %d\n"+
		"Success rate: %d%%",
		s.TotalWords, s.TestsCompleted, s.PassedTests, s.SuccessRate)
}
