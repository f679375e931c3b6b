package translate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("line 3", From("line %d", 3))
	assert.NotNil(Printer())
}

func TestSetLanguageConcurrent(t *testing.T) {
	assert := assert.New(t)

	var wg sync.WaitGroup
	for n := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n%2 == 0 {
				SetLanguage(language.AmericanEnglish)
			}
			assert.Equal("register unknown", From("register unknown"))
		}()
	}
	wg.Wait()
}
