package edgecases

import (
	"math/rand/v2"

	"github.com/mrsinham/screenforge/internal/util"
)

var specialCharFirstNamesMale = []string{
	"Жан-Пиер", "Иван-Асен", "Jean-Pierre", "José", "Łukasz", "Ángel",
}

var specialCharFirstNamesFemale = []string{
	"Мария-Елена", "Анна-Мария", "Marie-Claire", "Zoë", "Renée", "Ángela",
}

var specialCharLastNames = []string{
	"О'Конър", "Д'Агостино", "Петров-Стоянов", "Müller-Schmidt", "García-López",
	"Ivanov-Петров", "Çelik", "Škvorecký",
}

// GenerateSpecialCharName generates a name with hyphens, apostrophes or mixed scripts
func GenerateSpecialCharName(sex string, rng *rand.Rand) string {
	var firstName string
	if sex == "F" {
		firstName = util.PickOne(specialCharFirstNamesFemale, rng)
	} else {
		firstName = util.PickOne(specialCharFirstNamesMale, rng)
	}
	return firstName + " " + util.PickOne(specialCharLastNames, rng)
}

// MaxFieldLength bounds generated long values so they still fit on one table line
const MaxFieldLength = 64

var longFirstNames = []string{
	"Александър-Максимилиан", "Константин-Благовест", "Христофор-Емануил",
}

var longFemaleFirstNames = []string{
	"Антоанета-Благовеста", "Магдалена-Александрина", "Екатерина-Радостина",
}

var longLastNames = []string{
	"Христодулопулос-Маджаров", "Александрова-Константинова", "Вандерберг-Монтгомъри",
}

// GenerateLongName generates a name with a long compound first and last name
func GenerateLongName(sex string, rng *rand.Rand) string {
	first := util.PickOne(longFirstNames, rng)
	if sex == "F" {
		first = util.PickOne(longFemaleFirstNames, rng)
	}
	name := []rune(first + " " + util.PickOne(longLastNames, rng) + " " + util.PickOne(longLastNames, rng))
	if len(name) > MaxFieldLength {
		name = name[:MaxFieldLength]
	}
	return string(name)
}
