package library

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramHandler handles Telegram commands for the library feature
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the library feature
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes library-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "stats":
		return h.handleStats(bot, chatID)
	case "search":
		return h.handleSearch(bot, chatID, args)
	case "genres":
		return h.handleGenres(bot, chatID)
	default:
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Unknown library command. Use /stats, /search <query> or /genres"))
		return nil
	}
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"stats":  "Show library statistics",
		"search": "Search song titles (/search night sky)",
		"genres": "List genres",
	}
}

// handleStats shows library statistics
func (h *TelegramHandler) handleStats(bot *tgbotapi.BotAPI, chatID int64) error {
	ctx := context.Background()

	songCount, err := h.service.GetSongCount(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to get song count")
		bot.Send(msg)
		return err
	}
	genres, err := h.service.GetGenres(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to get genres")
		bot.Send(msg)
		return err
	}
	favorites, err := h.service.GetFavorites(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to get favorites")
		bot.Send(msg)
		return err
	}

	message := fmt.Sprintf("📊 *Library Statistics*\n\n"+
		"🎵 Songs: `%d`\n---\n"+
		"🏷 Genres: `%d`\n---\n"+
		"⭐ Favorites: `%d`", songCount, len(genres), len(favorites))

	msg := tgbotapi.NewMessage(chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}

// handleSearch runs a title search and lists the matches
func (h *TelegramHandler) handleSearch(bot *tgbotapi.BotAPI, chatID int64, args string) error {
	query := strings.TrimSpace(args)
	if query == "" {
		bot.Send(tgbotapi.NewMessage(chatID, "Usage: /search <query>"))
		return nil
	}
	songs, err := h.service.SearchSongs(context.Background(), query)
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Search failed"))
		return err
	}
	if len(songs) == 0 {
		bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("No songs matching %q", query)))
		return nil
	}
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🔎 *%d match(es)*\n\n", len(songs)))
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

// handleGenres lists all genre buckets
func (h *TelegramHandler) handleGenres(bot *tgbotapi.BotAPI, chatID int64) error {
	genres, err := h.service.GetGenres(context.Background())
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Failed to get genres"))
		return err
	}
	if len(genres) == 0 {
		bot.Send(tgbotapi.NewMessage(chatID, "The library has no genres yet"))
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, "🏷 "+strings.Join(genres, ", "))
	bot.Send(msg)
	return nil
}
