package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonQuiz     = "🧠 New quiz"
	ButtonMyWords  = "📚 My words"
	ButtonProgress = "📊 My progress"
	ButtonHelp     = "ℹ️ Help"

	callbackNewQuiz = "new_quiz"
	callbackSkip    = "quiz_skip"
	callbackStop    = "quiz_stop"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		t.quiz.sendNewQuiz(message.Chat.ID)
	case "stop":
		t.quiz.stopQuiz(message.Chat.ID)
	case "add":
		t.word.addWord(message.Chat.ID, message.CommandArguments())
	case "words":
		t.word.showMyWords(message.Chat.ID)
	case "stats":
		t.quiz.sendStats(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /help")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hallo! I help you drill German vocabulary.\n\n" +
		"✨ What I can do:\n" +
		"• 📚 Keep your German/English word pairs\n" +
		"• 🧠 Run 20-question quizzes\n" +
		"• 📊 Track how your quizzes went\n\n" +
		"Add words with /add Haus = house, then press a button below."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonMyWords),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start - show the menu
/add Haus = house; home - add a word pair, the category after ";" is optional
/words - your 10 newest words
/quiz - start a quiz
/stop - stop the running quiz
/stats - your progress

🧠 During a quiz just type the English translation.
A quiz has 20 questions and you pass with at most 3 mistakes.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Text {
	case ButtonQuiz:
		t.quiz.sendNewQuiz(chatID)
	case ButtonMyWords:
		t.word.showMyWords(chatID)
	case ButtonProgress:
		t.quiz.sendStats(chatID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		if t.quiz.inQuiz(chatID) {
			t.quiz.processAnswer(chatID, message.Text)
			return
		}
		msg := tgbotapi.NewMessage(chatID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case callbackNewQuiz:
		t.quiz.sendNewQuiz(chatID)
	case callbackSkip:
		t.quiz.skipQuestion(chatID)
	case callbackStop:
		t.quiz.stopQuiz(chatID)
	default:
		t.log.Warn("unknown callback data", zap.String("data", query.Data), zap.Int64("chat_id", chatID))
	}
}
