// Package i18n holds the static translation tables for the viewer. Labels
// are looked up by key with English as the fallback language, so a missing
// translation never yields an empty widget.
package i18n

// Lang identifies one supported UI language.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
)

// Languages lists the selectable languages in display order.
var Languages = []Lang{English, French}

// ParseLang normalizes a stored language preference.
func ParseLang(s string) Lang {
	if Lang(s) == French {
		return French
	}
	return English
}

// DisplayName returns the language's own name for the selector.
func (l Lang) DisplayName() string {
	if l == French {
		return "Français"
	}
	return "English"
}

// T returns the translation of key for lang, falling back to English and
// finally to the key itself.
func T(lang Lang, key string) string {
	if m, ok := dict[key]; ok {
		if s, ok := m[lang]; ok {
			return s
		}
		if s, ok := m[English]; ok {
			return s
		}
	}
	return key
}

var dict = map[string]map[Lang]string{
	"app.title": {English: "Viscobat", French: "Viscobat"},

	"tab.vi":      {English: "Viscosity Index", French: "Indice de viscosité"},
	"tab.temp":    {English: "Viscosity / Temperature", French: "Viscosité / Température"},
	"tab.mixture": {English: "Mixture", French: "Mélange"},
	"tab.mix2":    {English: "Two Bases", French: "Deux bases"},
	"tab.solver":  {English: "Solver", French: "Solveur"},

	"field.v1":     {English: "Viscosity 1 (mm²/s)", French: "Viscosité 1 (mm²/s)"},
	"field.t1":     {English: "Temperature 1 (°C)", French: "Température 1 (°C)"},
	"field.v2":     {English: "Viscosity 2 (mm²/s)", French: "Viscosité 2 (mm²/s)"},
	"field.t2":     {English: "Temperature 2 (°C)", French: "Température 2 (°C)"},
	"field.target": {English: "Target temperature (°C)", French: "Température cible (°C)"},

	"field.percent":   {English: "Percent (%)", French: "Pourcentage (%)"},
	"field.viscosity": {English: "Viscosity (mm²/s)", French: "Viscosité (mm²/s)"},
	"field.targetVisc": {
		English: "Target viscosity (mm²/s)",
		French:  "Viscosité cible (mm²/s)",
	},
	"field.baseA": {English: "Base A viscosity (mm²/s)", French: "Viscosité base A (mm²/s)"},
	"field.baseB": {English: "Base B viscosity (mm²/s)", French: "Viscosité base B (mm²/s)"},
	"field.kind":  {English: "Constraint", French: "Contrainte"},
	"field.value": {English: "Value (%)", French: "Valeur (%)"},
	"field.min":   {English: "Min", French: "Min"},
	"field.max":   {English: "Max", French: "Max"},
	"field.mixtureConstraint": {
		English: "Mixture viscosity constraint",
		French:  "Contrainte de viscosité du mélange",
	},

	"kind.free":         {English: "Free", French: "Libre"},
	"kind.range":        {English: "Range", French: "Plage"},
	"kind.objectiveMin": {English: "Minimize", French: "Minimiser"},
	"kind.objectiveMax": {English: "Maximize", French: "Maximiser"},
	"kind.setValue":     {English: "Set value", French: "Valeur imposée"},

	"button.compute":   {English: "Compute", French: "Calculer"},
	"button.addRow":    {English: "Add component", French: "Ajouter un composant"},
	"button.removeRow": {English: "Remove", French: "Supprimer"},
	"button.reset":     {English: "Reset fields", French: "Réinitialiser les champs"},

	"menu.file":       {English: "File", French: "Fichier"},
	"menu.exportPNG":  {English: "Export Chart as PNG…", French: "Exporter le graphique en PNG…"},
	"menu.exportXLSX": {English: "Export Table as XLSX…", French: "Exporter le tableau en XLSX…"},
	"menu.quit":       {English: "Quit", French: "Quitter"},

	"chart.title": {English: "Viscosity vs Temperature", French: "Viscosité selon la température"},
	"chart.x":     {English: "Temperature (°C)", French: "Température (°C)"},
	"chart.y":     {English: "Viscosity (mm²/s)", French: "Viscosité (mm²/s)"},
	"chart.empty": {English: "No data yet — run a computation", French: "Pas encore de données — lancez un calcul"},

	"result.vi": {
		English: "v40 = %.2f mm²/s   v100 = %.2f mm²/s   VI = %.1f",
		French:  "v40 = %.2f mm²/s   v100 = %.2f mm²/s   VI = %.1f",
	},
	"result.temp": {
		English: "slope = %.4f   intercept = %.4f",
		French:  "pente = %.4f   ordonnée = %.4f",
	},
	"result.tempTarget": {
		English: "Viscosity at target: %.2f mm²/s",
		French:  "Viscosité à la température cible : %.2f mm²/s",
	},
	"result.mixture": {
		English: "Mixture viscosity: %.2f mm²/s",
		French:  "Viscosité du mélange : %.2f mm²/s",
	},
	"result.mix2": {
		English: "Base A: %.2f %%   Base B: %.2f %%",
		French:  "Base A : %.2f %%   Base B : %.2f %%",
	},
	"result.solverViscosity": {
		English: "Mixture viscosity: %.2f mm²/s",
		French:  "Viscosité du mélange : %.2f mm²/s",
	},
	"result.solverComponent": {
		English: "Component %s: %.2f %%",
		French:  "Composant %s : %.2f %%",
	},

	"error.generic": {
		English: "The computation service reported an error.",
		French:  "Le service de calcul a signalé une erreur.",
	},
	"error.sum": {
		English: "Component percentages must sum to 100.",
		French:  "La somme des pourcentages doit être égale à 100.",
	},
	"error.noComponents": {
		English: "Enter at least one valid component.",
		French:  "Saisissez au moins un composant valide.",
	},
	"error.invalidField": {
		English: "Invalid value in field: %s",
		French:  "Valeur invalide dans le champ : %s",
	},

	"label.language": {English: "Language:", French: "Langue :"},
	"label.service":  {English: "Service:", French: "Service :"},
	"label.components": {
		English: "Components",
		French:  "Composants",
	},
	"label.knownComponents": {
		English: "Known components",
		French:  "Composants connus",
	},
}

// Keys returns all translation keys, for completeness tests.
func Keys() []string {
	out := make([]string, 0, len(dict))
	for k := range dict {
		out = append(out, k)
	}
	return out
}
