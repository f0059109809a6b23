package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
	"github.com/Spok95/stone-inventory/internal/errs"
)

// API is the subset of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetFileDirectURL(fileID string) (string, error)
}

type SlabService interface {
	Add(ctx context.Context, req slabs.Request) (*slabs.Slab, error)
	Update(ctx context.Context, id string, req slabs.Request) (*slabs.Slab, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c slabs.Criteria) ([]slabs.Slab, error)
	Get(ctx context.Context, id string) (*slabs.Slab, error)
	Reserve(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, typ, color string) (bool, error)
}

type SampleService interface {
	Add(ctx context.Context, req samples.Request) (*samples.Sample, error)
	Update(ctx context.Context, id string, req samples.Request) (*samples.Sample, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c samples.Criteria) ([]samples.Sample, error)
	Get(ctx context.Context, id string) (*samples.Sample, error)
	Increment(ctx context.Context, id string) (int, error)
	Decrement(ctx context.Context, id string) (int, error)
	CheckAvailability(ctx context.Context, typ, color string) (bool, error)
}

type PriceService interface {
	Add(ctx context.Context, req prices.Request) (*prices.Price, error)
	Update(ctx context.Context, id string, req prices.Request) (*prices.Price, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, typ, color string) (*prices.Price, error)
	List(ctx context.Context) ([]prices.Price, error)
	Import(ctx context.Context, rows []prices.ImportRow) (prices.ImportResult, error)
}

var (
	_ SlabService   = (*slabs.Service)(nil)
	_ SampleService = (*samples.Service)(nil)
	_ PriceService  = (*prices.Service)(nil)
)

type Bot struct {
	api     API
	log     *slog.Logger
	slabs   SlabService
	samples SampleService
	prices  PriceService
	fetch   func(url string) ([]byte, error)
}

func New(api API, log *slog.Logger, slabSvc SlabService, sampleSvc SampleService, priceSvc PriceService) *Bot {
	return &Bot{
		api: api, log: log,
		slabs: slabSvc, samples: sampleSvc, prices: priceSvc,
		fetch: httpGet,
	}
}

// Run handles updates one at a time until ctx is done or the updates channel closes.
func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// fail replies with the mapped message; internal failures are also logged.
func (b *Bot) fail(chatID int64, cmd string, err error) {
	if errs.KindOf(err) == errs.KindInternal {
		b.log.Error("command failed", "cmd", cmd, "chat_id", chatID, "err", err)
	}
	b.reply(chatID, errorReply(err))
}

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch {
	case msg.IsCommand():
		b.handleCommand(ctx, chatID, msg.Command(), msg.CommandArguments())
	case msg.Document != nil:
		b.handleDocument(ctx, chatID, msg.Document)
	default:
		b.reply(chatID, "Unknown input. Send /help")
	}
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warn("answer callback failed", "err", err)
	}
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	parts := strings.Split(cb.Data, ":")
	if len(parts) != 3 {
		b.log.Warn("unexpected callback", "data", cb.Data)
		return
	}
	switch parts[0] + ":" + parts[1] {
	case cbSlabReserve:
		b.handleCommand(ctx, chatID, "reserve", parts[2])
	case cbSampleInc:
		b.handleCommand(ctx, chatID, "inc", parts[2])
	case cbSampleDec:
		b.handleCommand(ctx, chatID, "dec", parts[2])
	default:
		b.log.Warn("unexpected callback", "data", cb.Data)
	}
}

func (b *Bot) handleDocument(ctx context.Context, chatID int64, doc *tgbotapi.Document) {
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		b.reply(chatID, "Only .xlsx price sheets are accepted.")
		return
	}
	data, err := b.downloadTelegramFile(doc.FileID)
	if err != nil {
		b.log.Error("download failed", "file_id", doc.FileID, "err", err)
		b.reply(chatID, "Could not download the file.")
		return
	}
	b.importPrices(ctx, chatID, data)
}

func (b *Bot) downloadTelegramFile(fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}
	return b.fetch(url)
}

func httpGet(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram returned status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
