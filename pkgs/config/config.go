package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keskad/conprint/pkgs/codepage"
	"github.com/spf13/viper"
)

type Console struct {
	// CodePage is the code page the console is switched to while conprint runs, as accepted by codepage.Parse
	CodePage string
}

type Output struct {
	// Engine selects the template syntax: "fmt" or "template"
	Engine string
}

type Configuration struct {
	Console Console
	Output  Output

	// Debug enables debug logging from the very start, before the commandline is parsed
	Debug bool
}

// TargetCodePage parses the configured console code page
func (c *Configuration) TargetCodePage() (codepage.CodePage, error) {
	cp, err := codepage.Parse(c.Console.CodePage)
	if err != nil {
		return codepage.UTF8, fmt.Errorf("invalid console.codepage: %w", err)
	}
	return cp, nil
}

// NewConfig reads the optional .conprint.yaml from the home and working directory,
// then applies CONPRINT_* environment variables on top.
// On error the returned configuration still carries usable defaults.
func NewConfig(searchPaths ...string) (*Configuration, error) {
	if len(searchPaths) == 0 {
		searchPaths = []string{"$HOME/", "."}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".conprint")
	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}

	v.SetDefault("console.codepage", fmt.Sprintf("%d", uint32(codepage.UTF8)))
	v.SetDefault("output.engine", "fmt")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("CONPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := defaultConfig()
	if err := v.ReadInConfig(); err != nil {
		// the configuration file is fully optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("cannot parse config: %w", err)
		}
	}

	config := Configuration{}
	if err := v.Unmarshal(&config); err != nil {
		return defaults, fmt.Errorf("cannot parse config: %w", err)
	}

	return &config, nil
}

func defaultConfig() *Configuration {
	return &Configuration{
		Console: Console{CodePage: fmt.Sprintf("%d", uint32(codepage.UTF8))},
		Output:  Output{Engine: "fmt"},
	}
}
