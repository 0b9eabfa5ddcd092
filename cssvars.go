// Package cssvars enforces design-system variables in stylesheet declarations.
//
// A declaration passes when its value is built only from variable references
// ($scss, @less, var(--custom) or map-get(...)), or when every token of the
// value matches an exception pattern. Structural tokens of the border and
// background shorthands (widths, border styles, positions, repeat keywords,
// url(...)) are stripped before the check, so `1px solid $line` passes.
//
// # Library
//
// Build a rule from configuration literals and check declarations:
//
//	rule, err := cssvars.NewRule(`/^color|border/`, cssvars.Options{
//		ExceptionValues: `/^(transparent)|(none)/`,
//	})
//	if err != nil {
//		return err
//	}
//	verdict, checked := rule.Check("border", "1px solid #fff")
//	if checked && !verdict.Accepted() {
//		fmt.Println(cssvars.Message("border")) // Expected variable for border.
//	}
//
// The building blocks are exported on their own: NormalizeValue,
// IsValueAccepted, IsPropertyChecked and ParsePattern.
//
// # CLI Tool
//
// cssvars also provides a CLI that lints CSS, SCSS and Less files. Install with:
//
//	go install github.com/yacobolo/cssvars/cmd/cssvars@latest
package cssvars
