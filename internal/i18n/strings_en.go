package i18n

var en = map[string]string{
	"title":            "Usage",
	"initializing":     "Initializing...",
	"scanning":         "Scanning logs... %d files found",
	"parsing":          "Parsing %d/%d: %s",
	"finalizing":       "Crunching numbers...",
	"cancelled":        "Scan cancelled",
	"scan_failed":      "Could not read usage logs",
	"retry_hint":       "r retry · q quit",
	"logs_changed":     "Logs changed - press r to rescan",
	"no_usage":         "No usage recorded in this window",
	"hint":             "←/→ window · r rescan · q quit",
	"legend_other":     "other",
	"col_provider":     "Provider",
	"col_sessions":     "Sessions",
	"col_messages":     "Msgs",
	"col_tokens":       "Tokens",
	"col_cost":         "Cost",
	"col_share":        "Share",
	"stat_cost":        "Cost",
	"stat_sessions":    "Sessions",
	"stat_messages":    "Messages",
	"stat_tokens":      "Tokens",
	"stat_avg_session": "Avg/Session",
	"terminal_too_small": "Terminal too small",
	"current_size":       "Current: %dx%d",
}
