// Package stylecast resolves widget stylesheet rules into effective
// styles. It implements the small cascade implied by stylesheets of the
// form
//
//	button { border-radius: 4px; font-family: Arial; }
//	button.start-button { background-color: #2196F3; }
//	button.start-button:hover { background-color: #42A5F5; }
//	button.start-button:disabled { background-color: #BDBDBD; }
//
// # Resolution
//
// Load rules once, then resolve per paint or state change:
//
//	store, err := stylecast.LoadFile("themes/annotator.qss")
//	resolver := stylecast.NewResolver(store)
//	style, err := resolver.Resolve(stylecast.WidgetDescriptor{
//		BaseType:   "button",
//		StyleClass: "start-button",
//		States:     stylecast.StateSet{Hover: true},
//	})
//	bg, _ := style.Get(stylecast.PropBackgroundColor)
//
// Layers merge per property, lowest precedence first: base-type rule,
// base-type state rule, class rule, class state rule. Disabled
// suppresses hover. The store is immutable after construction; wrap it
// in an Engine for atomic hot-reload swaps.
//
// # Checking
//
// Check validates stylesheet files and reports issues in golangci-lint
// format:
//
//	result, err := stylecast.Check(stylecast.CheckConfig{
//		Patterns: []string{"themes/**/*.qss"},
//	})
//
// # CLI Tool
//
// stylecast also provides a CLI tool. Install with:
//
//	go install github.com/okrent/stylecast/cmd/stylecast@latest
package stylecast
