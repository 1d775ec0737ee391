// Package conv provides checked integer conversions for the generator.
//
// Range literals arrive as text and are parsed into the widest integer of
// their signedness before being checked against the declared width. These
// helpers report a descriptive error instead of truncating.
package conv
