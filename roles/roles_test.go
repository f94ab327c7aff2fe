package roles

import (
	"testing"

	utils "github.com/axelbellec/revolution/internal"
	"github.com/stretchr/testify/assert"
)

func TestAssign(t *testing.T) {
	cases := []struct {
		players  int
		expected []Tier
	}{
		{3, []Tier{Top, Middle, Bottom}},
		{4, []Tier{Top, Middle, Middle, Bottom}},
		{5, []Tier{Top, Second, Middle, Fourth, Bottom}},
		{6, []Tier{Top, Second, Middle, Middle, Fourth, Bottom}},
	}

	for _, c := range cases {
		utils.AssertDeepEqual(t, Assign(c.players), c.expected)
	}

	t.Run("unsupported counts yield no roles", func(t *testing.T) {
		assert.Nil(t, Assign(2))
		assert.Nil(t, Assign(7))
		assert.Nil(t, Assign(0))
	})
}

func TestHasViceRoles(t *testing.T) {
	assert.False(t, HasViceRoles(3))
	assert.False(t, HasViceRoles(4))
	utils.AssertTrue(t, HasViceRoles(5))
	utils.AssertTrue(t, HasViceRoles(6))
}

func TestExchangePartners(t *testing.T) {
	t.Run("partners are symmetric", func(t *testing.T) {
		for _, tier := range []Tier{Top, Second, Fourth, Bottom} {
			partner, ok := ExchangePartner(tier)
			utils.AssertTrue(t, ok)

			back, ok := ExchangePartner(partner)
			utils.AssertTrue(t, ok)
			utils.AssertEqual(t, back, tier)
		}
	})

	t.Run("middle exchanges with nobody", func(t *testing.T) {
		_, ok := ExchangePartner(Middle)
		assert.False(t, ok)
		utils.AssertEqual(t, ExchangeCount(Middle), 0)
	})

	t.Run("exchange counts", func(t *testing.T) {
		utils.AssertEqual(t, ExchangeCount(Top), 2)
		utils.AssertEqual(t, ExchangeCount(Bottom), 2)
		utils.AssertEqual(t, ExchangeCount(Second), 1)
		utils.AssertEqual(t, ExchangeCount(Fourth), 1)
	})
}

func TestCompare(t *testing.T) {
	utils.AssertEqual(t, Compare(Top, Bottom), -1)
	utils.AssertEqual(t, Compare(Bottom, Top), 1)
	utils.AssertEqual(t, Compare(Middle, Middle), 0)
	utils.AssertEqual(t, Compare(Second, Middle), -1)
}

func TestLabels(t *testing.T) {
	t.Run("every theme labels every tier", func(t *testing.T) {
		themes := []Theme{ThemeClassic, ThemePresidential, ThemeRoyalty, ThemeDaifugo, ThemeCorporate, ThemeMaritime}
		for _, theme := range themes {
			for tier := Top; tier <= Bottom; tier++ {
				assert.NotEmpty(t, Label(tier, theme))
			}
		}
	})

	t.Run("unknown theme falls back to classic", func(t *testing.T) {
		utils.AssertEqual(t, Label(Top, Theme("disco")), "President")
	})

	t.Run("custom labels win", func(t *testing.T) {
		custom := map[Tier]string{Bottom: "The Great Unlucky"}
		utils.AssertEqual(t, LabelWithOverrides(Bottom, ThemeClassic, custom), "The Great Unlucky")
		utils.AssertEqual(t, LabelWithOverrides(Top, ThemeClassic, custom), "President")
	})
}
