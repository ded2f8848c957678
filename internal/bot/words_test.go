package bot

import (
	"fmt"
	"testing"

	mock_bot "github.com/DanRulev/wortschatz/internal/bot/mock"
	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	"github.com/DanRulev/wortschatz/pkg/validator"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWordTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*WordT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	return NewWordTAPI(mockBot, mockService, zap.NewNop()), mockBot
}

func strPtr(s string) *string { return &s }

func TestWordT_showMyWords(t *testing.T) {
	t.Parallel()

	many := make([]models.WordPair, 12)
	for i := range many {
		many[i] = models.WordPair{ID: int64(12 - i), GermanWord: fmt.Sprintf("Wort%d", 12-i), EnglishTranslation: fmt.Sprintf("word%d", 12-i)}
	}

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, string)
	}{
		{
			name: "lists pairs with category",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().WordPairs(gomock.Any()).Return([]models.WordPair{
					{ID: 2, GermanWord: "Hund", EnglishTranslation: "dog", Category: strPtr("animals")},
					{ID: 1, GermanWord: "Haus", EnglishTranslation: "house"},
				}, nil)
			},
			assertFunc: func(t *testing.T, text string) {
				assert.Equal(t, "📚 Your newest words (2 of 2):\n\n• Hund → dog [animals]\n• Haus → house\n", text)
			},
		},
		{
			name: "only the ten newest",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().WordPairs(gomock.Any()).Return(many, nil)
			},
			assertFunc: func(t *testing.T, text string) {
				assert.Contains(t, text, "(10 of 12)")
				assert.Contains(t, text, "Wort12")
				assert.Contains(t, text, "Wort3 ")
				assert.NotContains(t, text, "Wort2 ")
			},
		},
		{
			name: "no words",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().WordPairs(gomock.Any()).Return([]models.WordPair{}, nil)
			},
			assertFunc: func(t *testing.T, text string) {
				assert.Equal(t, "📭 You have no words yet.\n"+addUsage, text)
			},
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().WordPairs(gomock.Any()).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, text string) {
				assert.Equal(t, "❌ Could not load your words. Try again later.", text)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordT, mb := newWordTMock(t, ctrl, tt.f)
			wordT.showMyWords(chatID)

			require.Len(t, mb.SentMessages, 1)
			tt.assertFunc(t, messageText(t, mb.SentMessages[0]))
		})
	}
}

func TestParseWordPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   string
		want   models.WordPairInput
		wantOK bool
	}{
		{
			name:   "pair",
			args:   " Haus = house ",
			want:   models.WordPairInput{GermanWord: "Haus", EnglishTranslation: "house"},
			wantOK: true,
		},
		{
			name:   "pair with category",
			args:   "E-Mail = email; office",
			want:   models.WordPairInput{GermanWord: "E-Mail", EnglishTranslation: "email", Category: strPtr("office")},
			wantOK: true,
		},
		{name: "no separator", args: "Haus house"},
		{name: "empty", args: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseWordPair(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWordT_addWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "success",
			args: "Haus = house",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().CreateWordPair(gomock.Any(), models.WordPairInput{GermanWord: "Haus", EnglishTranslation: "house"}).
					Return(models.WordPair{ID: 1, GermanWord: "Haus", EnglishTranslation: "house"}, nil)
			},
			wantText: "✅ Saved: Haus → house",
		},
		{
			name:     "usage",
			args:     "Haus",
			wantText: addUsage,
		},
		{
			name: "validation error",
			args: "Haus = ",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().CreateWordPair(gomock.Any(), gomock.Any()).
					Return(models.WordPair{}, validator.NewError("englishTranslation", "required", "englishTranslation is required"))
			},
			wantText: "❌ englishTranslation is required\n" + addUsage,
		},
		{
			name: "storage error",
			args: "Haus = house",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().CreateWordPair(gomock.Any(), gomock.Any()).Return(models.WordPair{}, assert.AnError)
			},
			wantText: "❌ Could not save the word. Try again later.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordT, mb := newWordTMock(t, ctrl, tt.f)
			wordT.addWord(chatID, tt.args)

			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.wantText, messageText(t, mb.SentMessages[0]))
		})
	}
}

func TestTelegramAPI_handleUpdate(t *testing.T) {
	t.Parallel()

	message := func(text string) *tgbotapi.Message {
		return &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, Text: text}
	}
	command := func(text string) *tgbotapi.Message {
		m := message(text)
		m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
		return m
	}

	tests := []struct {
		name         string
		bound        bool
		expired      bool
		update       tgbotapi.Update
		f            func(*mock_bot.MockServiceI)
		wantTexts    []string
		wantRequests int
	}{
		{
			name:   "help command",
			update: tgbotapi.Update{Message: command("/help")},
		},
		{
			name:      "unknown command",
			update:    tgbotapi.Update{Message: command("/nope")},
			wantTexts: []string{"Unknown command. Try /help"},
		},
		{
			name:   "progress button",
			update: tgbotapi.Update{Message: message(ButtonProgress)},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Stats(gomock.Any()).Return(models.Stats{}, nil)
			},
		},
		{
			name:      "free text outside a quiz",
			update:    tgbotapi.Update{Message: message("Haus")},
			wantTexts: []string{"I did not get that. Use the buttons below."},
		},
		{
			name:   "free text during a quiz is an answer",
			bound:  true,
			update: tgbotapi.Update{Message: message("house")},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "house").Return(quiz.Step{}, models.ErrSessionNotFound)
			},
			wantTexts: []string{"🤷 There is no quiz running."},
		},
		{
			name:      "free text after the quiz expired",
			bound:     true,
			expired:   true,
			update:    tgbotapi.Update{Message: message("house")},
			wantTexts: []string{"I did not get that. Use the buttons below."},
		},
		{
			name:  "skip callback",
			bound: true,
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb",
				Data:    callbackSkip,
				Message: message(""),
			}},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SkipQuestion(gomock.Any(), "s1").Return(quiz.Step{}, models.ErrQuizCompleted)
			},
			wantTexts:    []string{"🤷 There is no quiz running."},
			wantRequests: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_bot.NewMockServiceI(ctrl)
			if tt.f != nil {
				tt.f(mockService)
			}
			mb := &mock_bot.MockBot{}
			c := cache.NewCache()
			if tt.bound {
				c.BindChat(chatID, "s1")
				if !tt.expired {
					c.SetSession(&quiz.Session{ID: "s1"})
				}
			}

			api := newTelegramAPI(mb, mockService, c, zap.NewNop())
			api.handleUpdate(tt.update)

			require.NotEmpty(t, mb.SentMessages)
			for i, want := range tt.wantTexts {
				assert.Equal(t, want, messageText(t, mb.SentMessages[i]))
			}
			assert.Len(t, mb.Requests, tt.wantRequests)
			if tt.expired {
				_, bound := c.ChatSession(chatID)
				assert.False(t, bound)
			}
		})
	}
}
