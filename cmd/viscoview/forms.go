package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/export"
	"github.com/ramorimdias/viscobat/src/forms"
	"github.com/ramorimdias/viscobat/src/render"
	"github.com/ramorimdias/viscobat/src/rows"
)

// persistedEntry builds an entry whose text is loaded from and written
// through to the preference store under key.
func (s *uiState) persistedEntry(key, placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	if v, ok := s.store.Get(key); ok {
		e.SetText(v)
	}
	e.OnChanged = func(v string) { s.store.Set(key, v) }
	return e
}

func (s *uiState) resultLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	return l
}

// errText maps validation and service errors to localized messages.
// Transport errors keep their raw text, which names the unreachable host.
func (s *uiState) errText(err error) string {
	var fieldErr *forms.FieldError
	var apiErr *compute.APIError
	switch {
	case errors.Is(err, forms.ErrSumNot100):
		return s.tr("error.sum")
	case errors.Is(err, forms.ErrNoComponents):
		return s.tr("error.noComponents")
	case errors.As(err, &fieldErr):
		return fmt.Sprintf(s.tr("error.invalidField"), fieldErr.Field)
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return s.tr("error.generic")
	default:
		return err.Error()
	}
}

// callService runs fn off the UI goroutine and publishes its outcome into
// result via fyne.Do.
func (s *uiState) callService(result *widget.Label, fn func(ctx context.Context) (string, error)) {
	go func() {
		text, err := fn(context.Background())
		fyne.Do(func() {
			if err != nil {
				compute.Warnf("computation failed: %v", err)
				result.SetText(s.errText(err))
				return
			}
			result.SetText(text)
		})
	}()
}

func (s *uiState) buildVITab() fyne.CanvasObject {
	v1 := s.persistedEntry("vi.v1", "98.0")
	t1 := s.persistedEntry("vi.t1", "40")
	v2 := s.persistedEntry("vi.v2", "11.5")
	t2 := s.persistedEntry("vi.t2", "100")
	result := s.resultLabel()

	computeBtn := widget.NewButton(s.tr("button.compute"), func() {
		req, err := forms.BuildVI(v1.Text, t1.Text, v2.Text, t2.Text)
		if err != nil {
			result.SetText(s.errText(err))
			return
		}
		s.callService(result, func(ctx context.Context) (string, error) {
			resp, err := s.client.ViscosityIndex(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(s.tr("result.vi"), resp.V40, resp.V100, resp.VI), nil
		})
	})

	form := widget.NewForm(
		widget.NewFormItem(s.tr("field.v1"), v1),
		widget.NewFormItem(s.tr("field.t1"), t1),
		widget.NewFormItem(s.tr("field.v2"), v2),
		widget.NewFormItem(s.tr("field.t2"), t2),
	)
	return container.NewVBox(form, computeBtn, result)
}

func (s *uiState) buildTempTab() fyne.CanvasObject {
	v1 := s.persistedEntry("temp.v1", "98.0")
	t1 := s.persistedEntry("temp.t1", "40")
	v2 := s.persistedEntry("temp.v2", "11.5")
	t2 := s.persistedEntry("temp.t2", "100")
	target := s.persistedEntry("temp.target", "")
	result := s.resultLabel()

	computeBtn := widget.NewButton(s.tr("button.compute"), func() {
		req, err := forms.BuildTemperature(v1.Text, t1.Text, v2.Text, t2.Text, target.Text)
		if err != nil {
			result.SetText(s.errText(err))
			return
		}
		go func() {
			resp, err := s.client.ViscosityTemperature(context.Background(), req)
			fyne.Do(func() {
				if err != nil {
					compute.Warnf("computation failed: %v", err)
					result.SetText(s.errText(err))
					return
				}
				lines := []string{fmt.Sprintf(s.tr("result.temp"), resp.Slope, resp.Intercept)}
				if resp.TargetViscosity != nil {
					lines = append(lines, fmt.Sprintf(s.tr("result.tempTarget"), *resp.TargetViscosity))
				}
				result.SetText(joinLines(lines))
				s.tableData = resp.Table
				s.series = render.Series(resp.Table)
				s.renderChart()
			})
		}()
	})

	form := widget.NewForm(
		widget.NewFormItem(s.tr("field.v1"), v1),
		widget.NewFormItem(s.tr("field.t1"), t1),
		widget.NewFormItem(s.tr("field.v2"), v2),
		widget.NewFormItem(s.tr("field.t2"), t2),
		widget.NewFormItem(s.tr("field.target"), target),
	)
	chartArea := container.NewStack(s.chartCanvas, newChartTapOverlay(s))
	return container.NewVBox(form, computeBtn, result, chartArea, s.chartInfo)
}

func (s *uiState) buildMixtureTab() fyne.CanvasObject {
	result := s.resultLabel()
	box := newRowTableBox(s, s.mixtureRows, false)

	computeBtn := widget.NewButton(s.tr("button.compute"), func() {
		req, err := forms.BuildMixture(s.mixtureRows)
		if err != nil {
			result.SetText(s.errText(err))
			return
		}
		s.callService(result, func(ctx context.Context) (string, error) {
			resp, err := s.client.Mixture(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(s.tr("result.mixture"), resp.Viscosity), nil
		})
	})

	return container.NewVBox(
		widget.NewLabel(s.tr("label.components")),
		box.container(),
		computeBtn,
		result,
	)
}

func (s *uiState) buildMix2Tab() fyne.CanvasObject {
	target := s.persistedEntry("mix2.target", "46")
	baseA := s.persistedEntry("mix2.baseA", "")
	baseB := s.persistedEntry("mix2.baseB", "")
	result := s.resultLabel()
	known := newRowTableBox(s, s.knownRows, false)

	computeBtn := widget.NewButton(s.tr("button.compute"), func() {
		req, err := forms.BuildMix2(target.Text, baseA.Text, baseB.Text, s.knownRows)
		if err != nil {
			result.SetText(s.errText(err))
			return
		}
		s.callService(result, func(ctx context.Context) (string, error) {
			resp, err := s.client.Mix2(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(s.tr("result.mix2"), resp.PercentA, resp.PercentB), nil
		})
	})

	form := widget.NewForm(
		widget.NewFormItem(s.tr("field.targetVisc"), target),
		widget.NewFormItem(s.tr("field.baseA"), baseA),
		widget.NewFormItem(s.tr("field.baseB"), baseB),
	)
	return container.NewVBox(
		form,
		widget.NewLabel(s.tr("label.knownComponents")),
		known.container(),
		computeBtn,
		result,
	)
}

func (s *uiState) buildSolverTab() fyne.CanvasObject {
	result := s.resultLabel()
	box := newRowTableBox(s, s.solverRows, true)

	// mixture-level constraint, persisted like any fixed field
	mixValue := s.persistedEntry("solverMix.value", "")
	mixMin := s.persistedEntry("solverMix.min", "")
	mixMax := s.persistedEntry("solverMix.max", "")

	mixKind := rows.KindFree
	if raw, ok := s.store.Get("solverMix.type"); ok {
		mixKind = rows.ParseKind(raw)
	}
	applyMix := func(k rows.Kind) {
		needValue, needMinMax := k.ActiveFields()
		setEnabled(mixValue, needValue)
		setEnabled(mixMin, needMinMax)
		setEnabled(mixMax, needMinMax)
	}
	mixSel := widget.NewSelect(kindOptions(s.lang), nil)
	mixSel.Selected = kindLabel(s.lang, mixKind)
	mixSel.OnChanged = func(label string) {
		mixKind = kindFromLabel(s.lang, label)
		s.store.Set("solverMix.type", string(mixKind))
		applyMix(mixKind)
	}
	applyMix(mixKind)

	computeBtn := widget.NewButton(s.tr("button.compute"), func() {
		req, err := forms.BuildSolver(s.solverRows, mixKind, mixValue.Text, mixMin.Text, mixMax.Text)
		if err != nil {
			result.SetText(s.errText(err))
			return
		}
		s.callService(result, func(ctx context.Context) (string, error) {
			resp, err := s.client.Solve(ctx, req)
			if err != nil {
				return "", err
			}
			lines := solverComponentLines(s.lang, resp.Fractions)
			lines = append(lines, fmt.Sprintf(s.tr("result.solverViscosity"), resp.Viscosity))
			return joinLines(lines), nil
		})
	})

	constraint := container.NewVBox(
		widget.NewLabel(s.tr("field.mixtureConstraint")),
		container.NewGridWithColumns(4, mixSel, mixValue, mixMin, mixMax),
	)
	return container.NewVBox(
		widget.NewLabel(s.tr("label.components")),
		box.container(),
		constraint,
		computeBtn,
		result,
	)
}

func (s *uiState) writeXLSX(w io.Writer, table []compute.TablePoint) error {
	return export.WriteXLSX(w, table, export.XLSXHeaders{
		Temperature: s.tr("chart.x"),
		Viscosity:   s.tr("chart.y"),
	})
}
