package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args       []string
		flags      flags
		errWrapped error
		errMessage string
	}{
		"defaults": {
			args:  []string{"cloudflare-ddns"},
			flags: flags{configPath: "config.json", logLevel: "info"},
		},
		"short names": {
			args: []string{"cloudflare-ddns", "-c", "/etc/ddns.json", "-l", "debug", "-t"},
			flags: flags{
				configPath:  "/etc/ddns.json",
				logLevel:    "debug",
				verifyToken: true,
			},
		},
		"long names": {
			args: []string{"cloudflare-ddns", "--config=/etc/ddns.json",
				"--log-level", "warning", "--version"},
			flags: flags{
				configPath: "/etc/ddns.json",
				logLevel:   "warning",
				version:    true,
			},
		},
		"help": {
			args:       []string{"cloudflare-ddns", "--help"},
			flags:      flags{configPath: "config.json", logLevel: "info"},
			errWrapped: errHelpRequested,
			errMessage: "help requested",
		},
		"unknown flag": {
			args:       []string{"cloudflare-ddns", "-x"},
			flags:      flags{configPath: "config.json", logLevel: "info"},
			errMessage: "parsing flags: flag provided but not defined: -x",
		},
		"extra argument": {
			args:       []string{"cloudflare-ddns", "extra"},
			flags:      flags{configPath: "config.json", logLevel: "info"},
			errWrapped: errUnexpectedArguments,
			errMessage: "unexpected arguments: [extra]",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			output := bytes.NewBuffer(nil)

			flags, err := parseFlags(testCase.args, output)

			if testCase.errMessage != "" {
				require.EqualError(t, err, testCase.errMessage)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, testCase.flags, flags)
		})
	}
}
