package main

import (
	"fmt"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ramorimdias/viscobat/src/i18n"
	"github.com/ramorimdias/viscobat/src/rows"
)

var mixtureFields = []rows.FieldSpec{
	{Name: "percent"},
	{Name: "viscosity"},
}

var solverFields = []rows.FieldSpec{
	{Name: "viscosity"},
	{Name: "type", Default: string(rows.KindFree)},
	{Name: "value"},
	{Name: "min"},
	{Name: "max"},
}

func kindLabel(lang i18n.Lang, k rows.Kind) string {
	return i18n.T(lang, "kind."+string(k))
}

func kindOptions(lang i18n.Lang) []string {
	out := make([]string, 0, len(rows.Kinds))
	for _, k := range rows.Kinds {
		out = append(out, kindLabel(lang, k))
	}
	return out
}

func kindFromLabel(lang i18n.Lang, label string) rows.Kind {
	for _, k := range rows.Kinds {
		if kindLabel(lang, k) == label {
			return k
		}
	}
	return rows.KindFree
}

// rowTableBox renders a rows.Table as a column of editable rows with
// per-row remove buttons and a trailing add button. Structural changes
// rebuild the widgets so entry callbacks always close over live indexes.
type rowTableBox struct {
	state  *uiState
	table  *rows.Table
	box    *fyne.Container
	solver bool
}

func newRowTableBox(state *uiState, table *rows.Table, solver bool) *rowTableBox {
	b := &rowTableBox{state: state, table: table, box: container.NewVBox(), solver: solver}
	b.refresh()
	return b
}

func (b *rowTableBox) container() fyne.CanvasObject { return b.box }

func (b *rowTableBox) refresh() {
	b.box.Objects = nil
	for i := range b.table.Rows() {
		if b.solver {
			b.box.Add(b.buildSolverRow(i))
		} else {
			b.box.Add(b.buildComponentRow(i))
		}
	}
	add := widget.NewButton(b.state.tr("button.addRow"), func() {
		b.table.AddRow(nil)
		b.refresh()
	})
	b.box.Add(add)
	b.box.Refresh()
}

func (b *rowTableBox) entry(i int, field, placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	e.SetText(b.table.Row(i).Value(field))
	e.OnChanged = func(v string) { b.table.SetValue(i, field, v) }
	return e
}

func (b *rowTableBox) removeButton(i int) *widget.Button {
	return widget.NewButton(b.state.tr("button.removeRow"), func() {
		b.table.RemoveRow(i)
		b.refresh()
	})
}

func (b *rowTableBox) buildComponentRow(i int) fyne.CanvasObject {
	ordinal := widget.NewLabel(fmt.Sprintf("%d.", b.table.Row(i).Ordinal))
	percent := b.entry(i, "percent", b.state.tr("field.percent"))
	visc := b.entry(i, "viscosity", b.state.tr("field.viscosity"))
	return container.NewBorder(nil, nil, ordinal, b.removeButton(i),
		container.NewGridWithColumns(2, percent, visc))
}

func (b *rowTableBox) buildSolverRow(i int) fyne.CanvasObject {
	ordinal := widget.NewLabel(fmt.Sprintf("%d.", b.table.Row(i).Ordinal))
	visc := b.entry(i, "viscosity", b.state.tr("field.viscosity"))
	value := b.entry(i, "value", b.state.tr("field.value"))
	min := b.entry(i, "min", b.state.tr("field.min"))
	max := b.entry(i, "max", b.state.tr("field.max"))

	apply := func(k rows.Kind) {
		needValue, needMinMax := k.ActiveFields()
		setEnabled(value, needValue)
		setEnabled(min, needMinMax)
		setEnabled(max, needMinMax)
	}
	kind := rows.ParseKind(b.table.Row(i).Value("type"))
	sel := widget.NewSelect(kindOptions(b.state.lang), nil)
	sel.Selected = kindLabel(b.state.lang, kind)
	sel.OnChanged = func(label string) {
		k := kindFromLabel(b.state.lang, label)
		b.table.SetValue(i, "type", string(k))
		apply(k)
	}
	apply(kind)

	return container.NewBorder(nil, nil, ordinal, b.removeButton(i),
		container.NewGridWithColumns(5, visc, sel, value, min, max))
}

func setEnabled(e *widget.Entry, enabled bool) {
	if enabled {
		e.Enable()
	} else {
		e.Disable()
	}
}
