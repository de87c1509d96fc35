package glyph

// Quote is the 5 row proportional font of the quote scroller. Umlauts share
// the shapes of their base letters.
var Quote = newFont(5, []entry{
	{'A', []string{"0110", "1001", "1111", "1001", "1001"}},
	{'B', []string{"1110", "1001", "1110", "1001", "1110"}},
	{'C', []string{"0111", "1000", "1000", "1000", "0111"}},
	{'D', []string{"1110", "1001", "1001", "1001", "1110"}},
	{'E', []string{"1111", "1000", "1110", "1000", "1111"}},
	{'F', []string{"1111", "1000", "1110", "1000", "1000"}},
	{'G', []string{"0111", "1000", "1011", "1001", "0111"}},
	{'H', []string{"1001", "1001", "1111", "1001", "1001"}},
	{'I', []string{"111", "010", "010", "010", "111"}},
	{'J', []string{"0011", "0001", "0001", "1001", "0110"}},
	{'K', []string{"1001", "1010", "1100", "1010", "1001"}},
	{'L', []string{"1000", "1000", "1000", "1000", "1111"}},
	{'M', []string{"10001", "11011", "10101", "10001", "10001"}},
	{'N', []string{"1001", "1101", "1011", "1001", "1001"}},
	{'O', []string{"0110", "1001", "1001", "1001", "0110"}},
	{'P', []string{"1110", "1001", "1110", "1000", "1000"}},
	{'R', []string{"1110", "1001", "1110", "1010", "1001"}},
	{'S', []string{"0111", "1000", "0110", "0001", "1110"}},
	{'T', []string{"11111", "00100", "00100", "00100", "00100"}},
	{'U', []string{"1001", "1001", "1001", "1001", "0110"}},
	{'V', []string{"10001", "10001", "01010", "01010", "00100"}},
	{'W', []string{"10001", "10001", "10101", "10101", "01010"}},
	{'Y', []string{"1001", "1001", "0110", "0010", "1110"}},
	{'Z', []string{"1111", "0001", "0010", "0100", "1111"}},
	{'Ä', []string{"0110", "1001", "1111", "1001", "1001"}},
	{'Ö', []string{"0110", "1001", "1001", "1001", "0110"}},
	{'Ü', []string{"1001", "1001", "1001", "1001", "0110"}},
	{'0', []string{"0110", "1001", "1001", "1001", "0110"}},
	{'1', []string{"010", "110", "010", "010", "111"}},
	{'2', []string{"111", "001", "111", "100", "111"}},
	{'3', []string{"111", "001", "111", "001", "111"}},
	{'4', []string{"101", "101", "111", "001", "001"}},
	{'5', []string{"111", "100", "111", "001", "111"}},
	{'6', []string{"011", "100", "111", "101", "011"}},
	{'7', []string{"111", "001", "010", "010", "010"}},
	{'8', []string{"111", "101", "111", "101", "111"}},
	{'9', []string{"111", "101", "111", "001", "111"}},
	{'!', []string{"1", "1", "1", "0", "1"}},
	{'?', []string{"111", "001", "010", "000", "010"}},
	{'.', []string{"0", "0", "0", "0", "1"}},
	{',', []string{"0", "0", "0", "1", "1"}},
	{':', []string{"0", "1", "0", "1", "0"}},
	{'-', []string{"0", "0", "111", "0", "0"}},
	{' ', []string{"0", "0", "0", "0", "0"}},
})

// Small is the fixed width 3x5 font used for temperatures and dates.
var Small = newFont(5, []entry{
	{'0', []string{"111", "101", "101", "101", "111"}},
	{'1', []string{"010", "110", "010", "010", "111"}},
	{'2', []string{"111", "001", "111", "100", "111"}},
	{'3', []string{"111", "001", "111", "001", "111"}},
	{'4', []string{"101", "101", "111", "001", "001"}},
	{'5', []string{"111", "100", "111", "001", "111"}},
	{'6', []string{"111", "100", "111", "101", "111"}},
	{'7', []string{"111", "001", "001", "010", "010"}},
	{'8', []string{"111", "101", "111", "101", "111"}},
	{'9', []string{"111", "101", "111", "001", "111"}},
	{'/', []string{"001", "001", "010", "100", "100"}},
	{'-', []string{"000", "000", "111", "000", "000"}},
	{'+', []string{"000", "010", "111", "010", "000"}},
	{'?', []string{"111", "001", "010", "000", "010"}},
	{'°', []string{"111", "101", "111", "000", "000"}},
})
