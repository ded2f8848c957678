package bot

import (
	"fmt"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/wortschatz/internal/bot/mock"
	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const chatID int64 = 123

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *cache.Cache)) (*QuizT, *mock_bot.MockBot, *cache.Cache) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	c := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, c)
	}

	return NewQuizTAPI(mockBot, c, mockService, zap.NewNop()), mockBot, c
}

func testSession(t *testing.T, id string) *quiz.Session {
	t.Helper()

	sample := make([]models.WordPair, quiz.QuestionCount)
	for i := range sample {
		sample[i] = models.WordPair{
			ID:                 int64(i + 1),
			GermanWord:         fmt.Sprintf("Wort%d", i+1),
			EnglishTranslation: fmt.Sprintf("word%d", i+1),
		}
	}
	s, err := quiz.NewSession(id, sample, time.Now())
	require.NoError(t, err)
	return s
}

func messageText(t *testing.T, c tgbotapi.Chattable) string {
	t.Helper()
	msg, ok := c.(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg.Text
}

func TestQuizT_sendNewQuiz(t *testing.T) {
	t.Parallel()

	first := testSession(t, "s1")
	replacement := testSession(t, "new")

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *cache.Cache)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "success: asks the first question",
			f: func(ms *mock_bot.MockServiceI, _ *cache.Cache) {
				ms.EXPECT().StartQuiz(gomock.Any()).Return(first, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❓ 1/20 How do you translate: Wort1", msg.Text)
				assert.NotNil(t, msg.ReplyMarkup)

				id, ok := c.ChatSession(chatID)
				require.True(t, ok)
				assert.Equal(t, "s1", id)
			},
		},
		{
			name: "replaces a running quiz",
			f: func(ms *mock_bot.MockServiceI, c *cache.Cache) {
				c.BindChat(chatID, "old")
				gomock.InOrder(
					ms.EXPECT().AbandonQuiz(gomock.Any(), "old").Return(models.ErrSessionNotFound),
					ms.EXPECT().StartQuiz(gomock.Any()).Return(replacement, nil),
				)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				id, ok := c.ChatSession(chatID)
				require.True(t, ok)
				assert.Equal(t, "new", id)
			},
		},
		{
			name: "not enough words",
			f: func(ms *mock_bot.MockServiceI, _ *cache.Cache) {
				ms.EXPECT().StartQuiz(gomock.Any()).Return(nil, fmt.Errorf("%w: have 3, need 20", models.ErrNotEnoughWords))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "📭 A quiz needs at least 20 words. Add more with /add first.", messageText(t, mb.SentMessages[0]))
				_, ok := c.ChatSession(chatID)
				assert.False(t, ok)
			},
		},
		{
			name: "error: StartQuiz fails",
			f: func(ms *mock_bot.MockServiceI, _ *cache.Cache) {
				ms.EXPECT().StartQuiz(gomock.Any()).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "❌ Could not start a quiz. Try again later.", messageText(t, mb.SentMessages[0]))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb, c := newQuizTMock(t, ctrl, tt.f)
			quizT.sendNewQuiz(chatID)

			tt.assertFunc(t, mb, c)
		})
	}
}

func TestQuizT_processAnswer(t *testing.T) {
	t.Parallel()

	running := testSession(t, "s1")
	running.Cursor = 1
	running.Answers = []models.TestAnswer{{QuestionID: 1, UserAnswer: "word1", IsCorrect: true, CorrectAnswer: "word1"}}

	finished := testSession(t, "s1")
	report := &models.Report{
		Result:    models.TestResult{ID: 1, CorrectAnswers: 16, TotalQuestions: 20, Duration: 61, Passed: 0},
		Questions: finished.Questions,
		Answers:   make([]models.TestAnswer, 20),
	}
	for i := range report.Answers {
		report.Answers[i] = models.TestAnswer{QuestionID: int64(i + 1), IsCorrect: i >= 4, CorrectAnswer: fmt.Sprintf("word%d", i+1)}
	}

	tests := []struct {
		name      string
		bound     bool
		answer    string
		f         func(*mock_bot.MockServiceI)
		wantTexts []string
		wantBound bool
	}{
		{
			name:   "correct answer then next question",
			bound:  true,
			answer: "word1",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "word1").Return(quiz.Step{
					Answer:  running.Answers[0],
					Session: running,
				}, nil)
			},
			wantTexts: []string{"✅ Correct!", "❓ 2/20 How do you translate: Wort2"},
			wantBound: true,
		},
		{
			name:   "wrong answer shows the expected one",
			bound:  true,
			answer: "cat",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "cat").Return(quiz.Step{
					Answer:  models.TestAnswer{QuestionID: 1, UserAnswer: "cat", CorrectAnswer: "word1"},
					Session: running,
				}, nil)
			},
			wantTexts: []string{"❌ Wrong. Answer: word1", "❓ 2/20 How do you translate: Wort2"},
			wantBound: true,
		},
		{
			name:   "last answer sends the report",
			bound:  true,
			answer: "word20",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "word20").Return(quiz.Step{
					Answer:  report.Answers[19],
					Session: finished,
					Report:  report,
				}, nil)
			},
			wantTexts: []string{
				"✅ Correct!",
				"🔁 Not this time, try again.\n16 of 20 correct (80%) in 61s\n\nRepeat these:\n" +
					"• Wort1 → word1\n• Wort2 → word2\n• Wort3 → word3\n• Wort4 → word4",
			},
		},
		{
			name:   "empty answer",
			bound:  true,
			answer: " ",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", " ").Return(quiz.Step{}, models.ErrEmptyAnswer)
			},
			wantTexts: []string{"✍️ Type a translation or press Skip."},
			wantBound: true,
		},
		{
			name:   "session expired",
			bound:  true,
			answer: "word1",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "word1").Return(quiz.Step{}, models.ErrSessionNotFound)
			},
			wantTexts: []string{"🤷 There is no quiz running."},
		},
		{
			name:   "storage failure stops the quiz",
			bound:  true,
			answer: "word1",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), "s1", "word1").Return(quiz.Step{}, assert.AnError)
			},
			wantTexts: []string{"❌ Something went wrong, the quiz was stopped."},
		},
		{
			name:      "no quiz bound",
			answer:    "word1",
			wantTexts: []string{"🤷 There is no quiz running."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb, c := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, c *cache.Cache) {
				if tt.bound {
					c.BindChat(chatID, "s1")
				}
				if tt.f != nil {
					tt.f(ms)
				}
			})

			quizT.processAnswer(chatID, tt.answer)

			require.Len(t, mb.SentMessages, len(tt.wantTexts))
			for i, want := range tt.wantTexts {
				assert.Equal(t, want, messageText(t, mb.SentMessages[i]))
			}
			_, bound := c.ChatSession(chatID)
			assert.Equal(t, tt.wantBound, bound)
		})
	}
}

func TestQuizT_skipQuestion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	running := testSession(t, "s1")
	running.Cursor = 1

	quizT, mb, _ := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, c *cache.Cache) {
		c.BindChat(chatID, "s1")
		ms.EXPECT().SkipQuestion(gomock.Any(), "s1").Return(quiz.Step{
			Answer:  models.TestAnswer{QuestionID: 1, CorrectAnswer: "word1"},
			Session: running,
		}, nil)
	})

	quizT.skipQuestion(chatID)

	require.Len(t, mb.SentMessages, 2)
	assert.Equal(t, "⏭ Skipped. Answer: word1", messageText(t, mb.SentMessages[0]))
	assert.Equal(t, "❓ 2/20 How do you translate: Wort2", messageText(t, mb.SentMessages[1]))
}

func TestQuizT_stopQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, c := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, c *cache.Cache) {
		c.BindChat(chatID, "s1")
		ms.EXPECT().AbandonQuiz(gomock.Any(), "s1").Return(nil)
	})

	quizT.stopQuiz(chatID)

	require.Len(t, mb.SentMessages, 1)
	assert.Equal(t, "⏹ Quiz stopped. Nothing was saved.", messageText(t, mb.SentMessages[0]))
	_, ok := c.ChatSession(chatID)
	assert.False(t, ok)

	mock_bot.ClearSentMessages(mb)
	quizT.stopQuiz(chatID)
	require.Len(t, mb.SentMessages, 1)
	assert.Equal(t, "🤷 There is no quiz running.", messageText(t, mb.SentMessages[0]))
}

func TestQuizT_sendStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		f        func(*mock_bot.MockServiceI, *cache.Cache)
		wantText string
	}{
		{
			name: "success",
			f: func(ms *mock_bot.MockServiceI, _ *cache.Cache) {
				ms.EXPECT().Stats(gomock.Any()).Return(models.Stats{TotalWords: 42, TestsCompleted: 3, PassedTests: 2, SuccessRate: 67}, nil)
			},
			wantText: "📊 *Your progress*\n\nWords: 42\nQuizzes completed: 3\nQuizzes passed: 2\nSuccess rate: 67%",
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI, _ *cache.Cache) {
				ms.EXPECT().Stats(gomock.Any()).Return(models.Stats{}, assert.AnError)
			},
			wantText: "❌ Could not load your progress",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb, _ := newQuizTMock(t, ctrl, tt.f)
			quizT.sendStats(chatID)

			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.wantText, messageText(t, mb.SentMessages[0]))
		})
	}
}
