package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/sheets"
)

func (b *Bot) handleCommand(ctx context.Context, chatID int64, cmd, tail string) {
	switch cmd {
	case "start", "help":
		m := tgbotapi.NewMessage(chatID, helpText)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)

	case "slabs":
		a, err := parseArgs(tail, "type", "color", "status")
		if err != nil {
			b.fail(chatID, cmd, errs.Invalid("%s", err))
			return
		}
		found, err := b.slabs.List(ctx, slabs.Criteria{Type: a.get("type"), Color: a.get("color"), Status: a.get("status")})
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		b.reply(chatID, listLines(found, "No slabs found.", slabLine))

	case "slab":
		id, ok := b.requireID(chatID, cmd, tail)
		if !ok {
			return
		}
		s, err := b.slabs.Get(ctx, id)
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		p, err := b.prices.Search(ctx, s.Type, s.Color)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			b.fail(chatID, cmd, err)
			return
		}
		m := tgbotapi.NewMessage(chatID, formatSlab(s, p))
		if s.Status == slabs.StatusAvailable {
			m.ReplyMarkup = slabKeyboard(s.ID)
		}
		b.send(m)

	case "reserve":
		id, ok := b.requireID(chatID, cmd, tail)
		if !ok {
			return
		}
		if err := b.slabs.Reserve(ctx, id); err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		b.reply(chatID, fmt.Sprintf("Slab %s reserved.", id))

	case "samples":
		a, err := parseArgs(tail, "type", "color", "available")
		if err != nil {
			b.fail(chatID, cmd, errs.Invalid("%s", err))
			return
		}
		found, err := b.samples.List(ctx, samples.Criteria{Type: a.get("type"), Color: a.get("color"), OnlyAvailable: a.flag("available")})
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		b.reply(chatID, listLines(found, "No samples found.", sampleLine))

	case "sample":
		id, ok := b.requireID(chatID, cmd, tail)
		if !ok {
			return
		}
		s, err := b.samples.Get(ctx, id)
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		m := tgbotapi.NewMessage(chatID, formatSample(s))
		m.ReplyMarkup = sampleKeyboard(s.ID)
		b.send(m)

	case "inc", "dec":
		id, ok := b.requireID(chatID, cmd, tail)
		if !ok {
			return
		}
		adjust := b.samples.Increment
		if cmd == "dec" {
			adjust = b.samples.Decrement
		}
		qty, err := adjust(ctx, id)
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		b.reply(chatID, fmt.Sprintf("Sample %s quantity: %d", id, qty))

	case "check":
		b.handleCheck(ctx, chatID, tail)

	case "price":
		a, err := parseArgs(tail, "type", "color")
		if err != nil {
			b.fail(chatID, cmd, errs.Invalid("%s", err))
			return
		}
		p, err := b.prices.Search(ctx, a.get("type"), a.get("color"))
		if err != nil {
			b.fail(chatID, cmd, err)
			return
		}
		b.reply(chatID, formatPrice(p))

	case "export":
		b.export(ctx, chatID)

	case "addslab", "setslab", "delslab", "addsample", "setsample", "delsample", "addprice", "setprice", "delprice":
		b.handleManage(ctx, chatID, cmd, tail)

	default:
		b.reply(chatID, "Unknown command. Send /help")
	}
}

func (b *Bot) requireID(chatID int64, cmd, tail string) (string, bool) {
	a, err := parseArgs(tail)
	if err != nil || a.first() == "" {
		b.reply(chatID, fmt.Sprintf("Usage: /%s <id>", cmd))
		return "", false
	}
	return a.first(), true
}

func (b *Bot) handleCheck(ctx context.Context, chatID int64, tail string) {
	a, err := parseArgs(tail, "type", "color")
	if err != nil {
		b.fail(chatID, "check", errs.Invalid("%s", err))
		return
	}
	var ok bool
	switch a.first() {
	case "slab", "slabs":
		ok, err = b.slabs.CheckAvailability(ctx, a.get("type"), a.get("color"))
	case "sample", "samples":
		ok, err = b.samples.CheckAvailability(ctx, a.get("type"), a.get("color"))
	default:
		b.reply(chatID, "Usage: /check slab|sample type=<type> color=<color>")
		return
	}
	if err != nil {
		b.fail(chatID, "check", err)
		return
	}
	if ok {
		b.reply(chatID, "Available.")
		return
	}
	b.reply(chatID, "Not available.")
}

func (b *Bot) export(ctx context.Context, chatID int64) {
	var (
		inv sheets.Inventory
		err error
	)
	if inv.Slabs, err = b.slabs.List(ctx, slabs.Criteria{}); err != nil {
		b.fail(chatID, "export", err)
		return
	}
	if inv.Samples, err = b.samples.List(ctx, samples.Criteria{}); err != nil {
		b.fail(chatID, "export", err)
		return
	}
	if inv.Prices, err = b.prices.List(ctx); err != nil {
		b.fail(chatID, "export", err)
		return
	}
	data, err := sheets.Export(inv)
	if err != nil {
		b.fail(chatID, "export", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("Slabs: %d, samples: %d, prices: %d", len(inv.Slabs), len(inv.Samples), len(inv.Prices))
	b.send(doc)
}

func (b *Bot) importPrices(ctx context.Context, chatID int64, data []byte) {
	rows, err := sheets.ReadPrices(data)
	if err != nil {
		b.fail(chatID, "import", err)
		return
	}
	res, err := b.prices.Import(ctx, rows)
	if err != nil {
		b.fail(chatID, "import", err)
		return
	}
	b.reply(chatID, fmt.Sprintf("Prices imported: %d created, %d updated.", res.Created, res.Updated))
}
