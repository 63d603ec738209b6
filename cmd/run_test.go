/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRefreshRates(t *testing.T) {
	rates, err := parseRefreshRates("30,60,120")
	require.NoError(t, err)
	assert.Equal(t, []int{30, 60, 120}, rates)

	rates, err = parseRefreshRates(" 60 , 144 ")
	require.NoError(t, err)
	assert.Equal(t, []int{60, 144}, rates)

	rates, err = parseRefreshRates("")
	require.NoError(t, err)
	assert.Nil(t, rates)

	_, err = parseRefreshRates("60,fast")
	assert.Error(t, err)
}
