package colormap

// Builtin returns a registry with the standard gradients.
//
// Each call builds a fresh registry; callers construct it once at startup and
// pass it to whatever needs it.
func Builtin() *Registry {
	maps := []*Colormap{
		// Perceptually uniform sequential
		mustFromList("viridis",
			"#440154", "#482475", "#414487", "#355f8d", "#2a788e", "#21918c",
			"#22a884", "#44bf70", "#7ad151", "#bddf26", "#fde725"),
		mustFromList("plasma",
			"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778",
			"#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921"),
		mustFromList("inferno",
			"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754",
			"#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4"),
		mustFromList("magma",
			"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981", "#b73779",
			"#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf"),
		mustFromList("cividis",
			"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
			"#8a8779", "#a69d75", "#c4b56c", "#e4cf5b", "#fee838"),

		// ColorBrewer sequential
		mustFromList("Greys",
			"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
			"#737373", "#525252", "#252525", "#000000"),
		mustFromList("Blues",
			"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
			"#4292c6", "#2171b5", "#08519c", "#08306b"),
		mustFromList("Greens",
			"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
			"#41ab5d", "#238b45", "#006d2c", "#00441b"),
		mustFromList("Reds",
			"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
			"#ef3b2c", "#cb181d", "#a50f15", "#67000d"),
		mustFromList("Oranges",
			"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c",
			"#f16913", "#d94801", "#a63603", "#7f2704"),
		mustFromList("Purples",
			"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8",
			"#807dba", "#6a51a3", "#54278f", "#3f007d"),

		// Sequential ramps
		mustSegmented("gray",
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 0}, {1, 1}}),
		mustSegmented("binary",
			[]Stop{{0, 1}, {1, 0}},
			[]Stop{{0, 1}, {1, 0}},
			[]Stop{{0, 1}, {1, 0}}),
		mustSegmented("hot",
			[]Stop{{0, 0.0416}, {0.365079, 1}, {1, 1}},
			[]Stop{{0, 0}, {0.365079, 0}, {0.746032, 1}, {1, 1}},
			[]Stop{{0, 0}, {0.746032, 0}, {1, 1}}),
		mustSegmented("bone",
			[]Stop{{0, 0}, {0.746032, 0.652778}, {1, 1}},
			[]Stop{{0, 0}, {0.365079, 0.319444}, {0.746032, 0.777778}, {1, 1}},
			[]Stop{{0, 0}, {0.365079, 0.444444}, {1, 1}}),
		mustSegmented("copper",
			[]Stop{{0, 0}, {0.809524, 1}, {1, 1}},
			[]Stop{{0, 0}, {1, 0.7812}},
			[]Stop{{0, 0}, {1, 0.4975}}),

		// Two-color ramps
		mustSegmented("cool",
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 1}, {1, 0}},
			[]Stop{{0, 1}, {1, 1}}),
		mustSegmented("spring",
			[]Stop{{0, 1}, {1, 1}},
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 1}, {1, 0}}),
		mustSegmented("summer",
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 0.5}, {1, 1}},
			[]Stop{{0, 0.4}, {1, 0.4}}),
		mustSegmented("autumn",
			[]Stop{{0, 1}, {1, 1}},
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 0}, {1, 0}}),
		mustSegmented("winter",
			[]Stop{{0, 0}, {1, 0}},
			[]Stop{{0, 0}, {1, 1}},
			[]Stop{{0, 1}, {1, 0.5}}),

		// Miscellaneous
		mustSegmented("jet",
			[]Stop{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
			[]Stop{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
			[]Stop{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}}),
	}

	r, err := NewRegistry(maps...)
	if err != nil {
		panic(err)
	}
	return r
}

func mustSegmented(name string, red, green, blue []Stop) *Colormap {
	cm, err := Segmented(name, red, green, blue)
	if err != nil {
		panic(err)
	}
	return cm
}

func mustFromList(name string, hexColors ...string) *Colormap {
	cm, err := FromList(name, hexColors...)
	if err != nil {
		panic(err)
	}
	return cm
}
