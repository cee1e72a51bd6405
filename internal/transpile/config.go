package transpile

// RsEdition is the edition of Rust that the input code is written in.
type RsEdition int

const (
	// LATEST_RS is the most recent Rust edition that this module supports.
	LATEST_RS RsEdition = iota
	// RS_2015 is a placeholder. This edition is currently not supported.
	RS_2015
	// RS_2018 is the 2018 edition of Rust, currently the only one supported.
	RS_2018
)

// Strategy selects how Rust code is turned into TypeScript.
type Strategy int

const (
	// CAUTIOUS favours safety over readability. Verbose output which looks
	// very different to the input Rust code, but does not pollute global
	// scope. A placeholder, currently not supported.
	CAUTIOUS Strategy = iota
	// GUNGHO favours readability over safety. Pollutes global scope by
	// adding methods to native prototype objects, eg String.prototype.len().
	// Output looks very similar to the input Rust code, and line numbers
	// are preserved.
	GUNGHO
)

// TsMajor is the major version of TypeScript that RsToTs should output.
type TsMajor int

const (
	// LATEST_TS is the most recent TypeScript major-version supported.
	LATEST_TS TsMajor = iota
	// TS_3 is a placeholder. This version is currently not supported.
	TS_3
	// TS_4 is TypeScript 4, currently the only version supported.
	TS_4
)

// Config controls how Rust is transpiled to TypeScript. Build one with
// NewConfig and override the defaults with the chainable setters:
//
//	transpile.NewConfig().Strategy(transpile.CAUTIOUS).TsMajor(transpile.TS_3)
type Config struct {
	rsEdition RsEdition
	strategy  Strategy
	tsMajor   TsMajor
}

// NewConfig creates a default Config, to pass to RsToTs.
func NewConfig() Config {
	return Config{
		rsEdition: LATEST_RS,
		strategy:  GUNGHO,
		tsMajor:   LATEST_TS,
	}
}

// RsEdition overrides the configuration's default Rust edition.
func (c Config) RsEdition(replacement RsEdition) Config {
	c.rsEdition = replacement
	return c
}

// Strategy overrides the configuration's default transpilation strategy.
func (c Config) Strategy(replacement Strategy) Config {
	c.strategy = replacement
	return c
}

// TsMajor overrides the configuration's default TypeScript major-version.
func (c Config) TsMajor(replacement TsMajor) Config {
	c.tsMajor = replacement
	return c
}

// String displays the configuration in a human-readable CSV format, eg
// "Latest Rust edition (2018), Latest TypeScript (4), Gungho".
func (c Config) String() string {
	out := ""
	switch c.rsEdition {
	case LATEST_RS:
		out += "Latest Rust edition (2018), "
	case RS_2015:
		out += "Rust edition 2015, "
	case RS_2018:
		out += "Rust edition 2018, "
	}
	switch c.tsMajor {
	case LATEST_TS:
		out += "Latest TypeScript (4), "
	case TS_3:
		out += "TypeScript 3, "
	case TS_4:
		out += "TypeScript 4, "
	}
	switch c.strategy {
	case CAUTIOUS:
		out += "Cautious"
	case GUNGHO:
		out += "Gungho"
	}
	return out
}
