package main

import (
	"testing"

	"go.viam.com/highwayplanner/logging"
	"go.viam.com/test"
)

func TestParseLevelKnownValues(t *testing.T) {
	cases := map[string]logging.Level{
		"debug": logging.DEBUG,
		"info":  logging.INFO,
		"warn":  logging.WARN,
		"error": logging.ERROR,
	}
	for input, expected := range cases {
		got, err := parseLevel(input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, expected)
	}
}

func TestParseLevelUnknownValue(t *testing.T) {
	_, err := parseLevel("trace")
	test.That(t, err, test.ShouldNotBeNil)
}
