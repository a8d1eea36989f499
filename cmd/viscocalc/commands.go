package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramorimdias/viscobat/src/axis"
	"github.com/ramorimdias/viscobat/src/compute"
	"github.com/ramorimdias/viscobat/src/export"
	"github.com/ramorimdias/viscobat/src/render"
	"github.com/ramorimdias/viscobat/src/rows"
)

type VICmd struct {
	V1 float64 `arg:"" help:"Viscosity at T1 (mm²/s)."`
	T1 float64 `arg:"" help:"First temperature (°C)."`
	V2 float64 `arg:"" help:"Viscosity at T2 (mm²/s)."`
	T2 float64 `arg:"" help:"Second temperature (°C)."`
}

func (c *VICmd) Run(ctx *Context) error {
	resp, err := ctx.Client.ViscosityIndex(context.Background(), compute.VIRequest{
		V1: c.V1, T1: c.T1, V2: c.V2, T2: c.T2,
	})
	if err != nil {
		return err
	}
	fmt.Println(labelStyle.Render("v40:      ") + valueStyle.Render(fmt.Sprintf("%.2f mm²/s", resp.V40)))
	fmt.Println(labelStyle.Render("v100:     ") + valueStyle.Render(fmt.Sprintf("%.2f mm²/s", resp.V100)))
	fmt.Println(labelStyle.Render("VI:       ") + headerStyle.Render(fmt.Sprintf("%.1f", resp.VI)))
	return nil
}

type TempCmd struct {
	V1     float64  `arg:"" help:"Viscosity at T1 (mm²/s)."`
	T1     float64  `arg:"" help:"First temperature (°C)."`
	V2     float64  `arg:"" help:"Viscosity at T2 (mm²/s)."`
	T2     float64  `arg:"" help:"Second temperature (°C)."`
	Target *float64 `help:"Report the viscosity at this temperature (°C)."`
	PNG    string   `help:"Write the chart to this PNG file." type:"path"`
	XLSX   string   `help:"Write the table to this XLSX file." type:"path"`
}

func (c *TempCmd) Run(ctx *Context) error {
	resp, err := ctx.Client.ViscosityTemperature(context.Background(), compute.TemperatureRequest{
		V1: c.V1, T1: c.T1, V2: c.V2, T2: c.T2, Target: c.Target,
	})
	if err != nil {
		return err
	}
	fmt.Println(labelStyle.Render("slope:     ") + valueStyle.Render(fmt.Sprintf("%.4f", resp.Slope)))
	fmt.Println(labelStyle.Render("intercept: ") + valueStyle.Render(fmt.Sprintf("%.4f", resp.Intercept)))
	if resp.TargetViscosity != nil {
		fmt.Println(labelStyle.Render("target:    ") +
			headerStyle.Render(fmt.Sprintf("%.2f mm²/s", *resp.TargetViscosity)))
	}
	fmt.Println()
	fmt.Print(renderTable(resp.Table))

	if c.PNG != "" {
		if err := c.savePNG(ctx, resp.Table); err != nil {
			return err
		}
		compute.Infof("chart written to %s", c.PNG)
	}
	if c.XLSX != "" {
		headers := export.XLSXHeaders{Temperature: "Temperature (°C)", Viscosity: "Viscosity (mm²/s)"}
		if err := export.SaveXLSX(c.XLSX, resp.Table, headers); err != nil {
			return err
		}
		compute.Infof("table written to %s", c.XLSX)
	}
	return nil
}

func (c *TempCmd) savePNG(ctx *Context, table []compute.TablePoint) error {
	img := render.TemperatureChart(render.Series(table), ctx.Cfg.Chart.Width, ctx.Cfg.Chart.Height,
		render.Labels{
			Title:  "Viscosity vs Temperature",
			XTitle: "Temperature (°C)",
			YTitle: "Viscosity (mm²/s)",
			Empty:  "no data",
		})
	f, err := os.Create(c.PNG)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.EncodePNG(img, f)
}

// renderTable formats the temperature table as two right-aligned columns,
// narrowed when the terminal is narrower than the default layout.
func renderTable(table []compute.TablePoint) string {
	colW := 18
	if w := termWidth(); w < 2*colW+4 {
		colW = w/2 - 2
		if colW < 8 {
			colW = 8
		}
	}
	cell := lipgloss.NewStyle().Width(colW).Align(lipgloss.Right)
	head := cell.Inherit(headerStyle)

	var b strings.Builder
	b.WriteString(head.Render("T (°C)") + head.Render("v (mm²/s)") + "\n")
	for _, p := range table {
		b.WriteString(cell.Render(axis.FormatTick(p.Temperature)) +
			cell.Render(axis.FormatTick(p.Viscosity)) + "\n")
	}
	return b.String()
}

type MixCmd struct {
	Components []string `arg:"" help:"Components as percent:viscosity pairs, e.g. 60:100 40:32."`
}

func (c *MixCmd) Run(ctx *Context) error {
	comps, err := parseComponents(c.Components)
	if err != nil {
		return err
	}
	resp, err := ctx.Client.Mixture(context.Background(), compute.MixtureRequest{Components: comps})
	if err != nil {
		return err
	}
	fmt.Println(labelStyle.Render("mixture viscosity: ") +
		headerStyle.Render(fmt.Sprintf("%.2f mm²/s", resp.Viscosity)))
	return nil
}

type Mix2Cmd struct {
	Target float64  `arg:"" help:"Target viscosity of the blend (mm²/s)."`
	BaseA  float64  `arg:"" help:"Viscosity of base A (mm²/s)."`
	BaseB  float64  `arg:"" help:"Viscosity of base B (mm²/s)."`
	Known  []string `help:"Fixed components as percent:viscosity pairs." sep:"none"`
}

func (c *Mix2Cmd) Run(ctx *Context) error {
	known, err := parseComponents(c.Known)
	if err != nil {
		return err
	}
	resp, err := ctx.Client.Mix2(context.Background(), compute.Mix2Request{
		TargetViscosity: c.Target,
		BaseAViscosity:  c.BaseA,
		BaseBViscosity:  c.BaseB,
		KnownComponents: known,
	})
	if err != nil {
		return err
	}
	fmt.Println(labelStyle.Render("base A: ") + headerStyle.Render(fmt.Sprintf("%.2f %%", resp.PercentA)))
	fmt.Println(labelStyle.Render("base B: ") + headerStyle.Render(fmt.Sprintf("%.2f %%", resp.PercentB)))
	return nil
}

type SolveCmd struct {
	Components []string `arg:"" help:"Constraints as viscosity[:kind[:a[:b]]]; kinds: free, range (a=min b=max), setValue (a=value), objectiveMin, objectiveMax."`
	MixKind    string   `help:"Mixture constraint kind." default:"free"`
	MixValue   *float64 `help:"Mixture viscosity for kind setValue."`
	MixMin     *float64 `help:"Mixture viscosity lower bound for kind range."`
	MixMax     *float64 `help:"Mixture viscosity upper bound for kind range."`
}

func (c *SolveCmd) Run(ctx *Context) error {
	var req compute.SolverRequest
	for _, a := range c.Components {
		comp, err := parseSolverComponent(a)
		if err != nil {
			return err
		}
		req.Components = append(req.Components, comp)
	}

	kind := rows.ParseKind(c.MixKind)
	req.Mixture = compute.SolverConstraint{Type: string(kind)}
	needValue, needMinMax := kind.ActiveFields()
	if needValue {
		if c.MixValue == nil {
			return fmt.Errorf("--mix-kind=%s needs --mix-value", kind)
		}
		req.Mixture.Value = c.MixValue
	}
	if needMinMax {
		if c.MixMin == nil || c.MixMax == nil {
			return fmt.Errorf("--mix-kind=%s needs --mix-min and --mix-max", kind)
		}
		req.Mixture.Min = c.MixMin
		req.Mixture.Max = c.MixMax
	}

	resp, err := ctx.Client.Solve(context.Background(), req)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(resp.Fractions))
	for k := range resp.Fractions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	for _, k := range keys {
		idx, _ := strconv.Atoi(k)
		fmt.Println(labelStyle.Render(fmt.Sprintf("component %d: ", idx+1)) +
			valueStyle.Render(fmt.Sprintf("%.2f %%", resp.Fractions[k])))
	}
	fmt.Println(labelStyle.Render("mixture viscosity: ") +
		headerStyle.Render(fmt.Sprintf("%.2f mm²/s", resp.Viscosity)))
	return nil
}
