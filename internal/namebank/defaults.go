package namebank

// Built-in pools used when the name bank has no imported lists. Weights are
// rough frequency ranks, enough to make common names common.

var defaultGivenMale = []WeightedName{
	{"Jan", 90}, {"Piotr", 80}, {"Andrzej", 72}, {"Krzysztof", 70},
	{"Stanisław", 64}, {"Tomasz", 58}, {"Paweł", 54}, {"Józef", 50},
	{"Marcin", 44}, {"Marek", 40}, {"Michał", 38}, {"Adam", 34},
	{"Jakub", 30}, {"Franciszek", 26}, {"Antoni", 24}, {"Wojciech", 20},
	{"Henryk", 16}, {"Kazimierz", 12}, {"Leon", 8}, {"Ignacy", 4},
}

var defaultGivenFemale = []WeightedName{
	{"Anna", 90}, {"Maria", 84}, {"Katarzyna", 72}, {"Małgorzata", 66},
	{"Agnieszka", 58}, {"Barbara", 54}, {"Ewa", 50}, {"Krystyna", 46},
	{"Magdalena", 40}, {"Zofia", 36}, {"Teresa", 32}, {"Joanna", 28},
	{"Janina", 24}, {"Helena", 20}, {"Irena", 16}, {"Halina", 12},
	{"Jadwiga", 10}, {"Aleksandra", 8}, {"Monika", 6}, {"Stefania", 4},
}

var defaultSurnameMale = []WeightedName{
	{"Nowak", 90}, {"Kowalski", 84}, {"Wiśniewski", 72}, {"Wójcik", 64},
	{"Kowalczyk", 60}, {"Kamiński", 54}, {"Lewandowski", 50}, {"Zieliński", 46},
	{"Szymański", 40}, {"Woźniak", 36}, {"Dąbrowski", 32}, {"Kozłowski", 28},
	{"Jankowski", 24}, {"Mazur", 20}, {"Wojciechowski", 16}, {"Kwiatkowski", 12},
	{"Krawczyk", 10}, {"Kaczmarek", 8}, {"Piotrowski", 6}, {"Grabowski", 4},
}

var defaultSurnameFemale = []WeightedName{
	{"Nowak", 90}, {"Kowalska", 84}, {"Wiśniewska", 72}, {"Wójcik", 64},
	{"Kowalczyk", 60}, {"Kamińska", 54}, {"Lewandowska", 50}, {"Zielińska", 46},
	{"Szymańska", 40}, {"Woźniak", 36}, {"Dąbrowska", 32}, {"Kozłowska", 28},
	{"Jankowska", 24}, {"Mazur", 20}, {"Wojciechowska", 16}, {"Kwiatkowska", 12},
	{"Krawczyk", 10}, {"Kaczmarek", 8}, {"Piotrowska", 6}, {"Grabowska", 4},
}

// Defaults returns the built-in pools. The lists are static and valid, so
// construction cannot fail.
func Defaults() Pools {
	mustPool := func(entries []WeightedName) *Pool {
		p, err := NewPool(entries)
		if err != nil {
			panic(err)
		}
		return p
	}
	return Pools{
		GivenMale:     mustPool(defaultGivenMale),
		GivenFemale:   mustPool(defaultGivenFemale),
		SurnameMale:   mustPool(defaultSurnameMale),
		SurnameFemale: mustPool(defaultSurnameFemale),
	}
}
