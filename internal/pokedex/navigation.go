package pokedex

// Next and Previous do no bounds checking; an id outside the catalog simply
// fails to load.
func Next(id int) int {
	return id + 1
}

func Previous(id int) int {
	return id - 1
}
