package playback

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramHandler handles Telegram commands for the playback feature
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the playback feature
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes playback-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "play":
		return h.handlePlay(bot, chatID, args)
	case "next":
		return h.handleNext(bot, chatID)
	case "prev":
		return h.handlePrevious(bot, chatID)
	case "queue":
		return h.handleQueue(bot, chatID, args)
	case "now":
		return h.handleNowPlaying(bot, chatID)
	default:
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Unknown playback command. Use /play <id>, /next, /prev, /queue or /now"))
		return nil
	}
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"play":  "Play a song by id (/play 3)",
		"next":  "Advance to the next song",
		"prev":  "Go back to the previous song",
		"queue": "Show the queue, or enqueue an id (/queue 3)",
		"now":   "Show the currently playing song",
	}
}

// handlePlay plays a song by id
func (h *TelegramHandler) handlePlay(bot *tgbotapi.BotAPI, chatID int64, args string) error {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "Usage: /play <song id>"))
		return nil
	}
	song, err := h.service.Play(context.Background(), id)
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ Could not play song %d", id)))
		return err
	}
	bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("▶️ Now playing: %s — %s", song.Title, song.Artist)))
	return nil
}

// handleNext advances playback
func (h *TelegramHandler) handleNext(bot *tgbotapi.BotAPI, chatID int64) error {
	song, err := h.service.Next(context.Background())
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Nothing to play next"))
		return err
	}
	bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("⏭ Now playing: %s — %s", song.Title, song.Artist)))
	return nil
}

// handlePrevious steps back through history
func (h *TelegramHandler) handlePrevious(bot *tgbotapi.BotAPI, chatID int64) error {
	song, err := h.service.Previous(context.Background())
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ No play history"))
		return err
	}
	bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("⏮ Now playing: %s — %s", song.Title, song.Artist)))
	return nil
}

// handleQueue shows the queue, or enqueues a song when an id is given
func (h *TelegramHandler) handleQueue(bot *tgbotapi.BotAPI, chatID int64, args string) error {
	args = strings.TrimSpace(args)
	if args != "" {
		id, err := strconv.Atoi(args)
		if err != nil {
			bot.Send(tgbotapi.NewMessage(chatID, "Usage: /queue or /queue <song id>"))
			return nil
		}
		if err := h.service.Enqueue(context.Background(), id); err != nil {
			bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ Could not queue song %d", id)))
			return err
		}
		bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("➕ Queued song %d", id)))
		return nil
	}

	songs, err := h.service.GetQueue(context.Background())
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Failed to get queue"))
		return err
	}
	if len(songs) == 0 {
		bot.Send(tgbotapi.NewMessage(chatID, "The queue is empty"))
		return nil
	}
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🎶 *Up next (%d)*\n\n", len(songs)))
	for i, song := range songs {
		if i >= 20 {
			builder.WriteString("... (truncated)\n")
			break
		}
		builder.WriteString(fmt.Sprintf("`%d` %s — %s\n", song.ID, song.Title, song.Artist))
	}
	msg := tgbotapi.NewMessage(chatID, builder.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}

// handleNowPlaying shows the current song
func (h *TelegramHandler) handleNowPlaying(bot *tgbotapi.BotAPI, chatID int64) error {
	song, err := h.service.Current(context.Background())
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Failed to get current song"))
		return err
	}
	if song == nil {
		bot.Send(tgbotapi.NewMessage(chatID, "Nothing is playing"))
		return nil
	}
	message := fmt.Sprintf("🎵 *Now playing*\n\n%s — %s", song.Title, song.Artist)
	if song.Genre != "" {
		message += fmt.Sprintf("\n🏷 %s", song.Genre)
	}
	msg := tgbotapi.NewMessage(chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}
