package norms

// Conversion tables for the 4:0–7:7 age band. Subtest slices are indexed by
// raw score 0..30. Index tables are published at even sums only.

func subtestTables() []Subtest {
	return []Subtest{
		{Key: BlockDesign, Abbrev: "BD", Name: "Block Design", scaled: []int{
			1, 1, 1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
			13, 14, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: Information, Abbrev: "IN", Name: "Information", scaled: []int{
			1, 1, 1, 1, 1, 2, 3, 4, 5, 6, 6, 7, 8, 9, 10, 11,
			12, 13, 14, 15, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: MatrixReasoning, Abbrev: "MR", Name: "Matrix Reasoning", scaled: []int{
			1, 1, 1, 1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
			16, 17, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: BugSearch, Abbrev: "BS", Name: "Bug Search", scaled: []int{
			1, 1, 1, 1, 1, 2, 3, 3, 4, 5, 6, 6, 7, 8, 9, 9,
			10, 11, 12, 12, 13, 14, 15, 15, 16, 17, 18, 18, 19, 19, 19,
		}},
		{Key: PictureMemory, Abbrev: "PM", Name: "Picture Memory", scaled: []int{
			1, 1, 1, 1, 2, 3, 4, 4, 5, 6, 7, 8, 8, 9, 10, 11,
			12, 12, 13, 14, 15, 16, 16, 17, 18, 19, 19, 19, 19, 19, 19,
		}},
		{Key: Similarities, Abbrev: "SI", Name: "Similarities", scaled: []int{
			1, 1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
			14, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: PictureConcepts, Abbrev: "PC", Name: "Picture Concepts", scaled: []int{
			1, 1, 1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
			13, 14, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: Cancellation, Abbrev: "CA", Name: "Cancellation", scaled: []int{
			1, 1, 1, 1, 1, 2, 2, 3, 4, 4, 5, 6, 7, 7, 8, 9,
			9, 10, 11, 11, 12, 13, 14, 14, 15, 16, 16, 17, 18, 18, 19,
		}},
		{Key: ZooLocations, Abbrev: "ZL", Name: "Zoo Locations", scaled: []int{
			1, 1, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 14, 15, 16,
			17, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
		}},
		{Key: ObjectAssembly, Abbrev: "OA", Name: "Object Assembly", scaled: []int{
			1, 1, 1, 1, 1, 2, 2, 3, 4, 5, 6, 7, 7, 8, 9, 10,
			11, 12, 13, 13, 14, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19,
		}},
	}
}

// evenPoints pairs composites with the even sums 2, 4, 6, ...
func evenPoints(first int, composites ...int) []Point {
	pts := make([]Point, len(composites))
	for i, c := range composites {
		pts[i] = Point{Sum: first + 2*i, Composite: c}
	}
	return pts
}

func indexTables() []Index {
	return []Index{
		{
			Key: VerbalComprehension, Abbrev: "VCI", Name: "Verbal Comprehension",
			Members: []SubtestKey{Information, Similarities},
			points: evenPoints(2,
				48, 54, 59, 65, 71, 77, 83, 88, 94, 100,
				106, 112, 117, 123, 129, 135, 141, 146, 152),
		},
		{
			Key: VisualSpatial, Abbrev: "VSI", Name: "Visual Spatial",
			Members: []SubtestKey{BlockDesign, ObjectAssembly},
			points: evenPoints(2,
				50, 55, 61, 66, 72, 78, 83, 89, 94, 100,
				106, 111, 117, 122, 128, 134, 139, 145, 150),
		},
		{
			Key: FluidReasoning, Abbrev: "FRI", Name: "Fluid Reasoning",
			Members: []SubtestKey{MatrixReasoning, PictureConcepts},
			points: evenPoints(2,
				49, 54, 60, 66, 72, 77, 83, 89, 94, 100,
				106, 111, 117, 123, 129, 134, 140, 146, 151),
		},
		{
			Key: WorkingMemory, Abbrev: "WMI", Name: "Working Memory",
			Members: []SubtestKey{PictureMemory, ZooLocations},
			points: evenPoints(2,
				47, 53, 59, 65, 71, 76, 82, 88, 94, 100,
				106, 112, 118, 124, 130, 135, 141, 147, 153),
		},
		{
			Key: ProcessingSpeed, Abbrev: "PSI", Name: "Processing Speed",
			Members: []SubtestKey{BugSearch, Cancellation},
			points: evenPoints(2,
				46, 52, 58, 64, 70, 76, 82, 88, 94, 100,
				106, 112, 118, 124, 130, 136, 142, 148, 154),
		},
	}
}

func fullScaleTable() Index {
	return Index{
		Key: FullScale, Abbrev: "CIT", Name: "Full Scale IQ",
		points: evenPoints(10,
			40, 42, 45, 47, 50, 52, 54, 57, 59, 62,
			64, 66, 69, 71, 74, 76, 78, 81, 83, 86,
			88, 90, 93, 95, 98, 100, 102, 105, 107, 110,
			112, 114, 117, 119, 122, 124, 126, 129, 131, 134,
			136, 138, 141, 143, 146, 148, 150, 153, 155, 158,
			160, 160, 160),
	}
}

// percentileTable has no rows for 112-114; see DESIGN.md.
func percentileTable() map[int]float64 {
	return map[int]float64{
		40: 0.1, 41: 0.1, 42: 0.1, 43: 0.1, 44: 0.1, 45: 0.1, 46: 0.1, 47: 0.1, 48: 0.1, 49: 0.1,
		50: 0.1, 51: 0.1, 52: 0.1, 53: 0.1, 54: 0.1, 55: 0.1, 56: 0.2, 57: 0.2, 58: 0.3, 59: 0.3,
		60: 0.4, 61: 0.5, 62: 0.6, 63: 0.7, 64: 0.8, 65: 1, 66: 1, 67: 1, 68: 2, 69: 2,
		70: 2, 71: 3, 72: 3, 73: 4, 74: 4, 75: 5, 76: 5, 77: 6, 78: 7, 79: 8,
		80: 9, 81: 10, 82: 12, 83: 13, 84: 14, 85: 16, 86: 18, 87: 19, 88: 21, 89: 23,
		90: 25, 91: 27, 92: 30, 93: 32, 94: 34, 95: 37, 96: 39, 97: 42, 98: 45, 99: 47,
		100: 50, 101: 53, 102: 55, 103: 58, 104: 61, 105: 63, 106: 66, 107: 68, 108: 70, 109: 73,
		110: 75, 111: 77, 115: 84, 116: 86, 117: 87, 118: 88, 119: 90,
		120: 91, 121: 92, 122: 93, 123: 94, 124: 95, 125: 95, 126: 96, 127: 96, 128: 97, 129: 97,
		130: 98, 131: 98, 132: 98, 133: 99, 134: 99, 135: 99, 136: 99.2, 137: 99.3, 138: 99.4, 139: 99.5,
		140: 99.6, 141: 99.7, 142: 99.7, 143: 99.8, 144: 99.8, 145: 99.9, 146: 99.9, 147: 99.9, 148: 99.9, 149: 99.9,
		150: 99.9, 151: 99.9, 152: 99.9, 153: 99.9, 154: 99.9, 155: 99.9, 156: 99.9, 157: 99.9, 158: 99.9, 159: 99.9,
		160: 99.9,
	}
}

func categoryBands() []Band {
	return []Band{
		{Min: 130, Category: "Very superior", Level: LevelStrength},
		{Min: 120, Category: "Superior", Level: LevelNormal},
		{Min: 110, Category: "High average", Level: LevelNormal},
		{Min: 90, Category: "Average", Level: LevelNormal},
		{Min: 80, Category: "Low average", Level: LevelNormal},
		{Min: 70, Category: "Borderline", Level: LevelWeakness},
		{Min: minComposite, Category: "Very low", Level: LevelWeakness},
	}
}

// minComposite is the floor band threshold; every lower score also lands there.
const minComposite = 0
