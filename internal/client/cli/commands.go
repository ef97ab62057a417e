package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/client/scanner"
	"github.com/dmitrijs2005/scankeeper/internal/client/services"
	"github.com/dmitrijs2005/scankeeper/internal/client/session"
)

const helpText = `Available commands:
  scan <code>          record a barcode
  scanmode             continuous scanning, one code per line, 'done' to stop
  list                 show the list
  open <group>         show one group
  back                 back to the groups
  reset                forget the saved view and return to scanning
  search <term>        search codes (empty term ends the search)
  delete <index>       delete one barcode
  deletesel <i> ...    delete several barcodes
  remove <code>        delete a barcode by code
  clear                delete all barcodes
  refresh              reload the shared list
  tab <scan|list>      switch tab
  status               storage and sync status
  exit                 leave the program`

func (a *App) Help(ctx context.Context) error {
	fmt.Fprintln(a.out, helpText)
	return nil
}

func (a *App) Scan(ctx context.Context, code string) error {
	switch outcome := a.session.Scan(ctx, code); outcome {
	case session.OutcomeSaved:
		a.feedback.Saved()
		fmt.Fprintf(a.out, "Saved %s (%s)\n", strings.TrimSpace(code), barcodes.Classify(strings.TrimSpace(code)).Name)
	case session.OutcomeDuplicate:
		a.feedback.Duplicate()
		fmt.Fprintf(a.out, "Duplicate: %s\n", strings.TrimSpace(code))
	default:
		fmt.Fprintf(a.out, "Ignored: %q is not a barcode\n", code)
	}
	return nil
}

// ScanMode reads codes from input until a "done" line or EOF.
func (a *App) ScanMode(ctx context.Context) error {
	if err := a.session.SwitchTab(ctx, services.TabScan); err != nil {
		return err
	}
	a.session.SetScanning(true)
	defer a.session.SetScanning(false)

	fmt.Fprintln(a.out, "Scanning... type 'done' to finish")

	codes, errs := scanner.NewAdapter(a.reader, scanner.WithStopWord("done")).Run(ctx)
	for code := range codes {
		_ = a.Scan(ctx, code)
	}
	if err := <-errs; err != nil {
		a.logger.Error(ctx, "scanner input failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Scanning stopped")
	return nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.session.SwitchTab(ctx, services.TabList); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Open(ctx context.Context, group string) error {
	if err := a.session.OpenGroup(ctx, canonicalGroup(group)); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	a.render()
	return nil
}

func (a *App) Back(ctx context.Context) error {
	a.session.Back(ctx)
	a.render()
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	a.session.ResetView(ctx)
	a.render()
	return nil
}

func (a *App) Search(ctx context.Context, term string) error {
	a.session.SetSearch(ctx, term)
	a.render()
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete <index>")
		return err
	}

	rec, ok := a.session.RecordAt(index)
	if !ok {
		fmt.Fprintln(a.out, "No barcode at index", index)
		return fmt.Errorf("index %d out of range", index)
	}
	if !a.confirm(fmt.Sprintf("Are you sure you want to delete this barcode?\n\n%s", rec.Code)) {
		return nil
	}

	// the list may have been refreshed while the prompt was open
	if !a.session.DeleteCode(rec.Code) {
		fmt.Fprintln(a.out, "No longer in the list:", rec.Code)
		return nil
	}
	a.render()
	return nil
}

func (a *App) DeleteSelected(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: deletesel <index> [index...]")
		return errors.New("no indices")
	}

	codes := make([]string, 0, len(args))
	for _, s := range args {
		i, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(a.out, "Not an index: %s\n", s)
			return err
		}
		rec, ok := a.session.RecordAt(i)
		if !ok {
			fmt.Fprintln(a.out, "No barcode at index", i)
			return fmt.Errorf("index %d out of range", i)
		}
		if !slices.Contains(codes, rec.Code) {
			codes = append(codes, rec.Code)
		}
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %d selected barcode(s)?", len(codes))) {
		return nil
	}

	if n := a.session.DeleteCodes(codes); n < len(codes) {
		fmt.Fprintf(a.out, "%d of %d selected barcode(s) were no longer in the list\n", len(codes)-n, len(codes))
	}
	a.render()
	return nil
}

func (a *App) Remove(ctx context.Context, code string) error {
	if !a.session.DeleteCode(code) {
		fmt.Fprintln(a.out, "Not in the list:", code)
		return nil
	}
	fmt.Fprintln(a.out, "Removed", code)
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if a.session.Screen().Count == 0 {
		fmt.Fprintln(a.out, "List is already empty!")
		return nil
	}
	if !a.confirm("Are you sure you want to clear all barcodes?") {
		return nil
	}
	a.session.Clear()
	a.render()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	applied, err := a.session.Refresh(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Refresh failed:", err)
		return err
	}
	if !applied {
		fmt.Fprintln(a.out, "Local changes are newer; refresh skipped")
	}
	a.render()
	return nil
}

func (a *App) Tab(ctx context.Context, name string) error {
	if err := a.session.SwitchTab(ctx, name); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if name == services.TabList {
		a.render()
	}
	return nil
}

func (a *App) Status(ctx context.Context) error {
	storage := "reachable"
	if err := a.storage.Ping(ctx); err != nil {
		storage = "unreachable: " + err.Error()
	}
	fmt.Fprintf(a.out, "mode: %s, storage %s, sync %s\n", a.config.StorageMode, storage, a.session.SyncState())
	return nil
}

func (a *App) render() {
	renderScreen(a.out, a.session.Screen())
}

// canonicalGroup matches a typed group name case-insensitively.
func canonicalGroup(name string) string {
	for _, c := range barcodes.Categories() {
		if strings.EqualFold(c.Name, name) {
			return c.Name
		}
	}
	return name
}
