package bot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Spok95/stone-inventory/internal/domain/measure"
	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
	"github.com/Spok95/stone-inventory/internal/errs"
)

var (
	slabKeys   = []string{"image", "description", "type", "color", "location", "supplier", "status", "length", "width", "thickness", "remnant", "damaged"}
	sampleKeys = []string{"image", "type", "color", "supplier", "qty"}
	priceKeys  = []string{"type", "color", "price"}
)

// handleManage covers the add/set/del commands for all three resources.
func (b *Bot) handleManage(ctx context.Context, chatID int64, cmd, tail string) {
	var (
		reply string
		err   error
	)
	switch cmd {
	case "addslab":
		reply, err = b.addSlab(ctx, tail)
	case "setslab":
		reply, err = b.setSlab(ctx, tail)
	case "delslab":
		reply, err = b.deleteOne(ctx, tail, "Slab", b.slabs.Delete)
	case "addsample":
		reply, err = b.addSample(ctx, tail)
	case "setsample":
		reply, err = b.setSample(ctx, tail)
	case "delsample":
		reply, err = b.deleteOne(ctx, tail, "Sample", b.samples.Delete)
	case "addprice":
		reply, err = b.addPrice(ctx, tail)
	case "setprice":
		reply, err = b.setPrice(ctx, tail)
	case "delprice":
		reply, err = b.deleteOne(ctx, tail, "Price", b.prices.Delete)
	}
	if err != nil {
		b.fail(chatID, cmd, err)
		return
	}
	b.reply(chatID, reply)
}

// setArgs parses "<id> key=value..." and insists on the id.
func setArgs(cmd, tail string, allowed []string) (string, args, error) {
	a, err := parseArgs(tail, allowed...)
	if err != nil {
		return "", a, errs.Invalid("%s", err)
	}
	if a.first() == "" {
		return "", a, errs.Invalid("Usage: /%s <id> key=value...", cmd)
	}
	return a.first(), a, nil
}

func (b *Bot) deleteOne(ctx context.Context, tail, resource string, del func(context.Context, string) error) (string, error) {
	a, err := parseArgs(tail)
	if err != nil || a.first() == "" {
		return "", errs.Invalid("Usage: /del%s <id>", strings.ToLower(resource))
	}
	if err := del(ctx, a.first()); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s deleted.", resource, a.first()), nil
}

func (b *Bot) addSlab(ctx context.Context, tail string) (string, error) {
	a, err := parseArgs(tail, slabKeys...)
	if err != nil {
		return "", errs.Invalid("%s", err)
	}
	req, err := slabRequest(a)
	if err != nil {
		return "", err
	}
	s, err := b.slabs.Add(ctx, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Slab %s added.", s.ID), nil
}

func (b *Bot) setSlab(ctx context.Context, tail string) (string, error) {
	id, a, err := setArgs("setslab", tail, slabKeys)
	if err != nil {
		return "", err
	}
	req, err := slabRequest(a)
	if err != nil {
		return "", err
	}
	s, err := b.slabs.Update(ctx, id, req)
	if err != nil {
		return "", err
	}
	return "Updated " + slabLine(*s), nil
}

func slabRequest(a args) (slabs.Request, error) {
	req := slabs.Request{
		Image:       a.get("image"),
		Description: a.get("description"),
		Type:        a.get("type"),
		Color:       a.get("color"),
		Location:    a.get("location"),
		Supplier:    a.get("supplier"),
		Status:      a.get("status"),
		IsRemnant:   a.optFlag("remnant"),
		IsDamaged:   a.optFlag("damaged"),
	}
	dims, err := dimensionsArg(a)
	if err != nil {
		return req, err
	}
	req.Dimensions = dims
	return req, nil
}

// dimensionsArg stays nil when no extent is given, so updates keep the stored size.
func dimensionsArg(a args) (*measure.DimensionsInput, error) {
	_, l := a.kv["length"]
	_, w := a.kv["width"]
	_, th := a.kv["thickness"]
	if !l && !w && !th {
		return nil, nil
	}
	var d measure.DimensionsInput
	for _, f := range []struct {
		key string
		dst **measure.Input
	}{{"length", &d.Length}, {"width", &d.Width}, {"thickness", &d.Thickness}} {
		v, ok := a.kv[f.key]
		if !ok {
			continue
		}
		in, err := parseMeasurement(v)
		if err != nil {
			return nil, err
		}
		*f.dst = in
	}
	return &d, nil
}

var measurementRe = regexp.MustCompile(`^(?:(-?\d+(?:\.\d+)?)ft)?(?:(-?\d+(?:\.\d+)?)in)?(?:(-?\d+(?:\.\d+)?)cm)?$`)

// parseMeasurement reads 10ft6in, 5ft, 8in or 3cm.
func parseMeasurement(s string) (*measure.Input, error) {
	m := measurementRe.FindStringSubmatch(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	if m == nil || m[0] == "" {
		return nil, errs.Invalid("cannot read measurement %q, use forms like 10ft6in or 3cm", s)
	}
	var vals [3]float64
	for i, g := range m[1:] {
		if g == "" {
			continue
		}
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return nil, errs.Invalid("cannot read measurement %q", s)
		}
		vals[i] = v
	}
	return &measure.Input{Feet: vals[0], Inches: vals[1], Centimeters: vals[2]}, nil
}

func (b *Bot) addSample(ctx context.Context, tail string) (string, error) {
	a, err := parseArgs(tail, sampleKeys...)
	if err != nil {
		return "", errs.Invalid("%s", err)
	}
	req, err := sampleRequest(a)
	if err != nil {
		return "", err
	}
	s, err := b.samples.Add(ctx, req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sample %s added.", s.ID), nil
}

func (b *Bot) setSample(ctx context.Context, tail string) (string, error) {
	id, a, err := setArgs("setsample", tail, sampleKeys)
	if err != nil {
		return "", err
	}
	req, err := sampleRequest(a)
	if err != nil {
		return "", err
	}
	s, err := b.samples.Update(ctx, id, req)
	if err != nil {
		return "", err
	}
	return "Updated " + sampleLine(*s), nil
}

func sampleRequest(a args) (samples.Request, error) {
	req := samples.Request{
		Image:    a.get("image"),
		Type:     a.get("type"),
		Color:    a.get("color"),
		Supplier: a.get("supplier"),
	}
	if v, ok := a.kv["qty"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, errs.Invalid("qty must be a whole number, got %q", v)
		}
		req.Quantity = &n
	}
	return req, nil
}

func (b *Bot) addPrice(ctx context.Context, tail string) (string, error) {
	a, err := parseArgs(tail, priceKeys...)
	if err != nil {
		return "", errs.Invalid("%s", err)
	}
	p, err := b.prices.Add(ctx, prices.Request{Type: a.get("type"), Color: a.get("color"), SqftPrice: a.get("price")})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Price %s added: %s", p.ID, formatPrice(p)), nil
}

func (b *Bot) setPrice(ctx context.Context, tail string) (string, error) {
	id, a, err := setArgs("setprice", tail, priceKeys)
	if err != nil {
		return "", err
	}
	p, err := b.prices.Update(ctx, id, prices.Request{Type: a.get("type"), Color: a.get("color"), SqftPrice: a.get("price")})
	if err != nil {
		return "", err
	}
	return "Updated " + formatPrice(p), nil
}
