// Make some internals visible to the tests.
package oldfmt

var Extract = extract
var AreEqual = areEqual
var RecordKey = recordKey

// SectionOf gives the section number of a record name and whether it
// drives the coordinate reading.
func SectionOf(key string) (int, bool) {
	_, sec := classify(key)
	return int(sec), sec == secCoordinate
}

const SecUnknown = int(secUnknown)

// Windows runs a rangeLoop to the end and collects what it gave back.
func Windows(ends []int, begin int) (ret [][3]int) {
	for rl := newRangeLoop(ends, begin); rl.next(); {
		ret = append(ret, [3]int{rl.begin, rl.end, rl.size})
	}
	return ret
}
