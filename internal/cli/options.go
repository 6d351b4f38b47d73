package cli

// Options is the command line of the grassplain command
type Options struct {
	Config           string `goopt:"name:config;pos:0;desc:specification file to generate a parser for"`
	Output           string `goopt:"name:output;short:o;desc:write the generated source to this file or directory"`
	Format           string `goopt:"name:format;short:f;desc:document syntax (toml or hcl), chosen by file extension when empty"`
	Check            bool   `goopt:"name:check;short:c;desc:only validate the specification"`
	Try              string `goopt:"name:try;short:t;desc:parse the given command line with the specification and print the result as JSON"`
	AllowUnknownKeys bool   `goopt:"name:allow-unknown-keys;desc:ignore keys the specification format does not define"`
	Verbose          bool   `goopt:"name:verbose;desc:log progress to stderr"`
	LogFormat        string `goopt:"name:log-format;desc:log output format (text or json);default:text"`
	Lang             string `goopt:"name:lang;desc:language of diagnostics;default:en"`
}
