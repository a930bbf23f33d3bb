// Package config loads and saves psr settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme)
//  2. Environment variables (NO_COLOR, PSR_THEME, PSR_SHOW_EMOJI)
//  3. YAML config file (.psr.yaml in the working directory or
//     ~/.config/psr/.psr.yaml)
//  4. Hardcoded defaults (dark theme, emoji on)
//
// # Saved Projects
//
// The config file also stores project aliases. The list order is the order
// projects appear in the TUI:
//
//	theme: dark
//	show_emoji: true
//	projects:
//	  - name: api
//	    path: /home/me/src/api
//
// # Environment Variables
//
//   - PSR_CONFIG: explicit config file path
//   - PSR_THEME: dark, light or nocolor
//   - NO_COLOR: any non-empty value forces the nocolor theme
//   - PSR_SHOW_EMOJI: "true"/"false" to toggle icons
//   - PSR_DEBUG: any non-empty value enables debug logging
package config
