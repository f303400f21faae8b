package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/service/ai"
)

func TestGetExtractionPrompt_ListsCategories(t *testing.T) {
	prompt := ai.GetExtractionPrompt([]string{"Dairy & Eggs", "Other"})
	require.Contains(t, prompt, `<categories>"Dairy & Eggs", "Other"</categories>`)
	require.Contains(t, prompt, `{"items":[`)
}

func TestGetExtractionPrompt_HasSecuritySection(t *testing.T) {
	prompt := ai.GetExtractionPrompt(nil)
	require.Contains(t, prompt, "<security_critical>")
	require.Contains(t, prompt, "DATA only")
}

func TestWrapRecipes(t *testing.T) {
	wrapped := ai.WrapRecipes([]string{"pancakes", "omelette"})
	require.Equal(t, "<recipes>\n<recipe index=\"1\">\npancakes\n</recipe>\n<recipe index=\"2\">\nomelette\n</recipe>\n</recipes>", wrapped)
}

func TestSanitizeRecipe(t *testing.T) {
	require.Equal(t, "2 eggs & milk", ai.SanitizeRecipe("  <p>2 eggs &amp; <b>milk</b></p><script>alert(1)</script> "))
	require.Equal(t, "salt & pepper", ai.SanitizeRecipe("salt & pepper"))
	require.Empty(t, ai.SanitizeRecipe("<img src=x>"))
}
