package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ramorimdias/viscobat/cmd/viscoview/uihelpers"
	"github.com/ramorimdias/viscobat/src/axis"
	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/config"
	"github.com/ramorimdias/viscobat/src/i18n"
	"github.com/ramorimdias/viscobat/src/render"
	"github.com/ramorimdias/viscobat/src/rows"
)

// uiState is the single mutable state behind the viewer. All mutation
// happens on the Fyne main goroutine; network calls run in goroutines and
// re-enter via fyne.Do.
type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	client *compute.Client
	store  *prefsStore
	lang   i18n.Lang

	mixtureRows *rows.Table
	knownRows   *rows.Table
	solverRows  *rows.Table

	// last successful viscosity/temperature result
	tableData []compute.TablePoint
	series    []axis.Point

	chartDirty  bool
	chartCanvas *canvas.Image
	chartInfo   *widget.Label
	tabs        *container.AppTabs
	tempTab     *container.TabItem

	lastChartW int
}

func (s *uiState) tr(key string) string { return i18n.T(s.lang, key) }

func main() {
	var cfgPath, serviceURL string
	flag.StringVar(&cfgPath, "config", "", "path to config.yaml (default: per-user config dir)")
	flag.StringVar(&serviceURL, "service", "", "computation service base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if serviceURL != "" {
		cfg.Service.URL = serviceURL
	}
	compute.SetLogLevel(cfg.LogLevel)

	a := app.NewWithID("com.viscobat.viewer")
	w := a.NewWindow("Viscobat")
	w.Resize(fyne.NewSize(1000, 720))

	store := newPrefsStore(a.Preferences())
	lang := i18n.ParseLang(a.Preferences().StringWithFallback(langPrefKey, cfg.Language))

	s := &uiState{
		app:    a,
		window: w,
		cfg:    cfg,
		client: compute.NewClient(cfg.Service.URL, cfg.Timeout()),
		store:  store,
		lang:   lang,
	}
	s.mixtureRows = rows.New("mixture", mixtureFields, store)
	s.mixtureRows.Bootstrap(2)
	s.knownRows = rows.New("known", mixtureFields, store)
	s.knownRows.Bootstrap(1)
	s.solverRows = rows.New("solver", solverFields, store)
	s.solverRows.Bootstrap(2)

	s.rebuildUI()
	s.watchResize()
	w.ShowAndRun()
}

// rebuildUI constructs the full widget tree from scratch. Called at
// startup and again after a language change or a reset; field values come
// back from the store, so rebuilding loses nothing.
func (s *uiState) rebuildUI() {
	s.window.SetTitle(s.tr("app.title"))

	s.chartCanvas = canvas.NewImageFromImage(render.Blank(s.cfg.Chart.Width, s.cfg.Chart.Height))
	s.chartCanvas.FillMode = canvas.ImageFillContain
	s.chartCanvas.SetMinSize(fyne.NewSize(float32(s.cfg.Chart.Width), float32(s.cfg.Chart.Height)))
	s.chartInfo = widget.NewLabel("")
	s.chartDirty = true

	s.tempTab = container.NewTabItem(s.tr("tab.temp"), s.buildTempTab())
	s.tabs = container.NewAppTabs(
		container.NewTabItem(s.tr("tab.vi"), s.buildVITab()),
		s.tempTab,
		container.NewTabItem(s.tr("tab.mixture"), s.buildMixtureTab()),
		container.NewTabItem(s.tr("tab.mix2"), s.buildMix2Tab()),
		container.NewTabItem(s.tr("tab.solver"), s.buildSolverTab()),
	)
	if idx := s.app.Preferences().IntWithFallback(tabPrefKey, 0); idx >= 0 && idx < len(s.tabs.Items) {
		s.tabs.SelectIndex(idx)
	}
	s.tabs.OnSelected = func(item *container.TabItem) {
		s.app.Preferences().SetInt(tabPrefKey, s.tabs.SelectedIndex())
		if item == s.tempTab && s.chartDirty {
			s.renderChart()
		}
	}

	s.window.SetMainMenu(s.buildMenus())
	s.window.SetContent(container.NewBorder(s.buildTopBar(), nil, nil, nil, s.tabs))

	if s.tabs.Selected() == s.tempTab {
		s.renderChart()
	}
}

func (s *uiState) buildTopBar() fyne.CanvasObject {
	langSel := widget.NewSelect(languageNames(), func(name string) {
		for _, l := range i18n.Languages {
			if l.DisplayName() == name {
				s.setLanguage(l)
				return
			}
		}
	})
	langSel.Selected = s.lang.DisplayName()

	reset := widget.NewButton(s.tr("button.reset"), s.resetAll)
	service := widget.NewLabel(s.tr("label.service") + " " + s.cfg.Service.URL)

	return container.NewHBox(
		widget.NewLabel(s.tr("label.language")), langSel,
		widget.NewSeparator(), service,
		widget.NewSeparator(), reset,
	)
}

func languageNames() []string {
	out := make([]string, 0, len(i18n.Languages))
	for _, l := range i18n.Languages {
		out = append(out, l.DisplayName())
	}
	return out
}

func (s *uiState) buildMenus() *fyne.MainMenu {
	exportPNG := fyne.NewMenuItem(s.tr("menu.exportPNG"), s.exportChartPNG)
	exportXLSX := fyne.NewMenuItem(s.tr("menu.exportXLSX"), s.exportTableXLSX)
	quit := fyne.NewMenuItem(s.tr("menu.quit"), func() { s.app.Quit() })
	quit.IsQuit = true
	return fyne.NewMainMenu(fyne.NewMenu(s.tr("menu.file"), exportPNG, exportXLSX, quit))
}

// setLanguage swaps the UI language and rebuilds everything. Field values
// are restored from the store; the chart re-renders with translated labels.
func (s *uiState) setLanguage(lang i18n.Lang) {
	if lang == s.lang {
		return
	}
	s.lang = lang
	s.app.Preferences().SetString(langPrefKey, string(lang))
	s.rebuildUI()
}

// resetAll clears every persisted field and row layout, keeping only the
// language, then rebuilds the UI on the defaults.
func (s *uiState) resetAll() {
	s.store.Reset()
	s.mixtureRows.Clear(2)
	s.knownRows.Clear(1)
	s.solverRows.Clear(2)
	s.tableData = nil
	s.series = nil
	s.rebuildUI()
}

// renderChart rasterizes the current series into the chart canvas. When
// another tab is selected the work is skipped and deferred until the
// temperature tab is shown again.
func (s *uiState) renderChart() {
	if s.chartCanvas == nil {
		return
	}
	if s.tabs != nil && s.tabs.Selected() != s.tempTab {
		s.chartDirty = true
		return
	}
	w, h := s.chartSize()
	s.chartCanvas.Image = render.TemperatureChart(s.series, w, h, render.Labels{
		Title:  s.tr("chart.title"),
		XTitle: s.tr("chart.x"),
		YTitle: s.tr("chart.y"),
		Empty:  s.tr("chart.empty"),
	})
	s.chartCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	s.chartCanvas.Refresh()
	s.chartDirty = false
	s.lastChartW = w
}

func (s *uiState) chartSize() (int, int) {
	raw := s.cfg.Chart.Width
	if s.window != nil {
		if ww := int(s.window.Canvas().Size().Width * 0.95); ww > 0 {
			raw = ww
		}
	}
	return uihelpers.ComputeChartDimensions(raw)
}

// watchResize re-renders the chart when the window width changes enough to
// warrant a different raster size. Fyne has no resize callback, so a slow
// ticker polls the canvas size.
func (s *uiState) watchResize() {
	go func() {
		t := time.NewTicker(500 * time.Millisecond)
		defer t.Stop()
		for range t.C {
			fyne.Do(func() {
				if s.tabs == nil || s.tabs.Selected() != s.tempTab {
					return
				}
				if w, _ := s.chartSize(); w != s.lastChartW {
					s.renderChart()
				}
			})
		}
	}()
}

func (s *uiState) exportChartPNG() {
	if s.chartCanvas == nil || s.chartCanvas.Image == nil {
		return
	}
	img := s.chartCanvas.Image
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := render.EncodePNG(img, wc); err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		compute.Infof("chart exported to %s", wc.URI())
	}, s.window)
	d.SetFileName("viscosity_temperature.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

func (s *uiState) exportTableXLSX() {
	if len(s.tableData) == 0 {
		dialog.ShowInformation(s.tr("menu.exportXLSX"), s.tr("chart.empty"), s.window)
		return
	}
	table := s.tableData
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := s.writeXLSX(wc, table); err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		compute.Infof("table exported to %s", wc.URI())
	}, s.window)
	d.SetFileName("viscosity_temperature.xlsx")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))
	d.Show()
}

// solverComponentLines orders solver fractions by their numeric component
// index and formats one localized line per component, 1-based for display.
func solverComponentLines(lang i18n.Lang, fractions map[string]float64) []string {
	type frac struct {
		idx int
		pct float64
	}
	ordered := make([]frac, 0, len(fractions))
	for k, v := range fractions {
		idx, err := strconv.Atoi(k)
		if err != nil {
			idx = len(fractions)
		}
		ordered = append(ordered, frac{idx: idx, pct: v})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].idx < ordered[j].idx })
	lines := make([]string, 0, len(ordered))
	for _, f := range ordered {
		lines = append(lines, fmt.Sprintf(i18n.T(lang, "result.solverComponent"),
			strconv.Itoa(f.idx+1), f.pct))
	}
	return lines
}

func joinLines(lines []string) string { return strings.Join(lines, "\n") }
