// Package i18n holds the static label tables. Translation is lookup
// data, not logic: unknown keys come back as the key itself so a miss
// is visible instead of silent.
package i18n

// Supported language codes.
const (
	French  = "fr"
	English = "en"
)

var tables = map[string]map[string]string{
	French: {
		"app.title":           "AgriDetect — Assistant Phytosanitaire",
		"language.prompt":     "Choisissez votre langue / Choose your language",
		"home.menu.analyze":   "Analyser une plante",
		"home.menu.chat":      "Assistant agricole",
		"home.menu.dashboard": "Tableau de bord",
		"home.hint":           "↑/↓ naviguer · Entrée valider · q quitter",
		"camera.prompt":       "Chemin de l'image à analyser :",
		"camera.preview":      "Image prête — Entrée pour analyser, Échap pour changer",
		"camera.analyzing":    "Analyse en cours",
		"result.title":        "Résultat de l'analyse",
		"result.unknown":      "Maladie non identifiée",
		"result.confidence":   "Confiance",
		"result.severity":     "Sévérité",
		"result.crop":         "Culture concernée",
		"result.treatments":   "Traitements recommandés",
		"result.prevention":   "Conseils de prévention",
		"result.healthy":      "Plante saine — aucun traitement nécessaire",
		"result.unspecified":  "Non spécifié",
		"result.again":        "n : nouvelle analyse · Échap : accueil",
		"chat.title":          "Assistant agricole",
		"chat.placeholder":    "Posez votre question...",
		"chat.sending":        "Envoi",
		"chat.apology":        "Désolé, je n'ai pas pu répondre. Veuillez réessayer.",
		"chat.empty":          "Le message ne peut pas être vide",
		"chat.toolong":        "Message trop long (1000 caractères maximum)",
		"chat.suggestions":    "Suggestions (1-4)",
		"dashboard.title":     "Tableau de bord",
		"dashboard.total":     "Détections totales",
		"dashboard.users":     "Utilisateurs actifs",
		"dashboard.diseases":  "Maladies répertoriées",
		"dashboard.success":   "Taux de réussite",
		"dashboard.top":       "Maladies les plus détectées",
		"dashboard.loading":   "Chargement des statistiques",
		"dashboard.empty":     "Statistiques indisponibles — vérifiez la connexion au serveur",
		"status.ready":        "Prêt",
		"status.connected":    "Connecté",
		"status.disconnected": "Hors ligne",
		"error.network":       "Problème de connexion au serveur",
		"error.timeout":       "Le serveur n'a pas répondu à temps. Réessayez.",
	},
	English: {
		"app.title":           "AgriDetect — Plant Health Assistant",
		"language.prompt":     "Choisissez votre langue / Choose your language",
		"home.menu.analyze":   "Analyze a plant",
		"home.menu.chat":      "Farming assistant",
		"home.menu.dashboard": "Dashboard",
		"home.hint":           "↑/↓ navigate · Enter select · q quit",
		"camera.prompt":       "Path of the image to analyze:",
		"camera.preview":      "Image ready — Enter to analyze, Esc to change",
		"camera.analyzing":    "Analyzing",
		"result.title":        "Analysis result",
		"result.unknown":      "Disease not identified",
		"result.confidence":   "Confidence",
		"result.severity":     "Severity",
		"result.crop":         "Affected crop",
		"result.treatments":   "Recommended treatments",
		"result.prevention":   "Prevention tips",
		"result.healthy":      "Healthy plant — no treatment needed",
		"result.unspecified":  "Not specified",
		"result.again":        "n: new analysis · Esc: home",
		"chat.title":          "Farming assistant",
		"chat.placeholder":    "Ask your question...",
		"chat.sending":        "Sending",
		"chat.apology":        "Sorry, I could not answer. Please try again.",
		"chat.empty":          "Message cannot be empty",
		"chat.toolong":        "Message too long (1000 characters max)",
		"chat.suggestions":    "Suggestions (1-4)",
		"dashboard.title":     "Dashboard",
		"dashboard.total":     "Total detections",
		"dashboard.users":     "Active users",
		"dashboard.diseases":  "Known diseases",
		"dashboard.success":   "Success rate",
		"dashboard.top":       "Most detected diseases",
		"dashboard.loading":   "Loading statistics",
		"dashboard.empty":     "Statistics unavailable — check the server connection",
		"status.ready":        "Ready",
		"status.connected":    "Connected",
		"status.disconnected": "Offline",
		"error.network":       "Could not reach the server",
		"error.timeout":       "The server did not answer in time. Try again.",
	},
}

// T looks a key up for lang, falling back to French, then to the key
// itself.
func T(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := tables[French][key]; ok {
		return v
	}
	return key
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Languages lists the supported codes, French first.
func Languages() []string {
	return []string{French, English}
}
