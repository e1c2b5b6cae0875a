package render

import "gonum.org/v1/plot/plotter"

// Fixed layout of the North-Indian diamond chart, in unit coordinates derived
// from the original 500×500 pixel design. Each display cell has one slot for
// the rashi number and a small set of slots for planet symbols; a house with
// more planets than slots draws only the first len(slots).

type houseLayout struct {
	rashi   plotter.XY
	planets []plotter.XY
}

// displayCell maps a house number (1-12, counted from the ascendant) to the
// cell of the diamond where it is drawn.
var displayCell = [13]int{
	0, 1, 8, 9, 10, 11, 12, 7, 2, 3, 4, 5, 6,
}

var cellLayouts = map[int]houseLayout{
	1: {
		rashi: plotter.XY{X: 247 / 500.0, Y: (500 - 119) / 500.0},
		planets: []plotter.XY{
			{X: 210 / 500.0, Y: (500 - 124) / 500.0},
			{X: 247 / 500.0, Y: (500 - 80) / 500.0},
			{X: 306 / 500.0, Y: (500 - 119) / 500.0},
			{X: 252 / 500.0, Y: (500 - 187) / 500.0},
			{X: 218 / 500.0, Y: (500 - 149) / 500.0},
		},
	},
	2: {
		rashi: plotter.XY{X: 375 / 500.0, Y: (500 - 421) / 500.0},
		planets: []plotter.XY{
			{X: 355 / 500.0, Y: (500 - 449) / 500.0},
			{X: 326 / 500.0, Y: (500 - 469) / 500.0},
			{X: 374 / 500.0, Y: (500 - 473) / 500.0},
			{X: 420 / 500.0, Y: (500 - 466) / 500.0},
		},
	},
	3: {
		rashi: plotter.XY{X: 418 / 500.0, Y: (500 - 374) / 500.0},
		planets: []plotter.XY{
			{X: 471 / 500.0, Y: (500 - 323) / 500.0},
			{X: 464 / 500.0, Y: (500 - 360) / 500.0},
			{X: 465 / 500.0, Y: (500 - 398) / 500.0},
			{X: 467 / 500.0, Y: (500 - 423) / 500.0},
		},
	},
	4: {
		rashi: plotter.XY{X: 375 / 500.0, Y: (500 - 250) / 500.0},
		planets: []plotter.XY{
			{X: 315 / 500.0, Y: (500 - 248) / 500.0},
			{X: 343 / 500.0, Y: (500 - 213) / 500.0},
			{X: 381 / 500.0, Y: (500 - 190) / 500.0},
			{X: 429 / 500.0, Y: (500 - 246) / 500.0},
			{X: 374 / 500.0, Y: (500 - 305) / 500.0},
		},
	},
	5: {
		rashi: plotter.XY{X: 419 / 500.0, Y: (500 - 123) / 500.0},
		planets: []plotter.XY{
			{X: 447 / 500.0, Y: (500 - 103) / 500.0},
			{X: 469 / 500.0, Y: (500 - 75) / 500.0},
			{X: 461 / 500.0, Y: (500 - 148) / 500.0},
			{X: 471 / 500.0, Y: (500 - 175) / 500.0},
		},
	},
	6: {
		rashi: plotter.XY{X: 373 / 500.0, Y: (500 - 75) / 500.0},
		planets: []plotter.XY{
			{X: 340 / 500.0, Y: (500 - 45) / 500.0},
			{X: 361 / 500.0, Y: (500 - 30) / 500.0},
			{X: 395 / 500.0, Y: (500 - 29) / 500.0},
			{X: 424 / 500.0, Y: (500 - 37) / 500.0},
		},
	},
	7: {
		rashi: plotter.XY{X: 251 / 500.0, Y: (500 - 360) / 500.0},
		planets: []plotter.XY{
			{X: 249 / 500.0, Y: (500 - 314) / 500.0},
			{X: 207 / 500.0, Y: (500 - 347) / 500.0},
			{X: 190 / 500.0, Y: (500 - 395) / 500.0},
			{X: 246 / 500.0, Y: (500 - 428) / 500.0},
			{X: 309 / 500.0, Y: (500 - 371) / 500.0},
		},
	},
	8: {
		rashi: plotter.XY{X: 123 / 500.0, Y: (500 - 77) / 500.0},
		planets: []plotter.XY{
			{X: 80 / 500.0, Y: (500 - 26) / 500.0},
			{X: 110 / 500.0, Y: (500 - 27) / 500.0},
			{X: 132 / 500.0, Y: (500 - 26) / 500.0},
			{X: 168 / 500.0, Y: (500 - 26) / 500.0},
		},
	},
	9: {
		rashi: plotter.XY{X: 77 / 500.0, Y: (500 - 122) / 500.0},
		planets: []plotter.XY{
			{X: 23 / 500.0, Y: (500 - 67) / 500.0},
			{X: 27 / 500.0, Y: (500 - 98) / 500.0},
			{X: 30 / 500.0, Y: (500 - 130) / 500.0},
			{X: 29 / 500.0, Y: (500 - 163) / 500.0},
		},
	},
	10: {
		rashi: plotter.XY{X: 123 / 500.0, Y: (500 - 245) / 500.0},
		planets: []plotter.XY{
			{X: 60 / 500.0, Y: (500 - 246) / 500.0},
			{X: 89 / 500.0, Y: (500 - 214) / 500.0},
			{X: 128 / 500.0, Y: (500 - 182) / 500.0},
			{X: 183 / 500.0, Y: (500 - 246) / 500.0},
			{X: 124 / 500.0, Y: (500 - 304) / 500.0},
		},
	},
	11: {
		rashi: plotter.XY{X: 76 / 500.0, Y: (500 - 378) / 500.0},
		planets: []plotter.XY{
			{X: 26 / 500.0, Y: (500 - 319) / 500.0},
			{X: 28 / 500.0, Y: (500 - 349) / 500.0},
			{X: 30 / 500.0, Y: (500 - 384) / 500.0},
			{X: 29 / 500.0, Y: (500 - 422) / 500.0},
		},
	},
	12: {
		rashi: plotter.XY{X: 125 / 500.0, Y: (500 - 426) / 500.0},
		planets: []plotter.XY{
			{X: 80 / 500.0, Y: (500 - 445) / 500.0},
			{X: 145 / 500.0, Y: (500 - 455) / 500.0},
			{X: 80 / 500.0, Y: (500 - 465) / 500.0},
			{X: 145 / 500.0, Y: (500 - 470) / 500.0},
		},
	},
}

// frameSegments are the polylines of the diamond frame.
var frameSegments = [][]plotter.XY{
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
	{{X: 0, Y: 0}, {X: 1, Y: 1}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}},
	{{X: 0.5, Y: 0}, {X: 0, Y: 0.5}},
	{{X: 0.5, Y: 0}, {X: 1, Y: 0.5}},
	{{X: 0, Y: 0.5}, {X: 0.5, Y: 1}},
	{{X: 0.5, Y: 1}, {X: 1, Y: 0.5}},
}
