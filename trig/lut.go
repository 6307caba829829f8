package trig

import "github.com/cwbudde/algo-qsine/fixed"

// sineLUT tabulates sin(k*pi/512) for k=0..255 as UQ0.16 values, i.e. the
// first quadrant [0, pi/2) sampled at 256 equally spaced phase points. The
// value 1.0 (sin(pi/2)) is unrepresentable in UQ0.16 and is not included -
// entry 255 is the largest representable value below it. Regenerating this
// table from round(sin(k*pi/512) * 2^16) reproduces every entry exactly;
// entry 0 is 0 and no entry reaches 0x10000.
var sineLUT = [256]fixed.UQ16{
	0x0000, 0x0192, 0x0324, 0x04B6, 0x0648, 0x07DA, 0x096C, 0x0AFE,
	0x0C90, 0x0E21, 0x0FB3, 0x1144, 0x12D5, 0x1466, 0x15F7, 0x1787,
	0x1918, 0x1AA8, 0x1C38, 0x1DC7, 0x1F56, 0x20E5, 0x2274, 0x2402,
	0x2590, 0x271E, 0x28AB, 0x2A38, 0x2BC4, 0x2D50, 0x2EDC, 0x3067,
	0x31F1, 0x337C, 0x3505, 0x368E, 0x3817, 0x399F, 0x3B27, 0x3CAE,
	0x3E34, 0x3FBA, 0x413F, 0x42C3, 0x4447, 0x45CB, 0x474D, 0x48CF,
	0x4A50, 0x4BD1, 0x4D50, 0x4ECF, 0x504D, 0x51CB, 0x5348, 0x54C3,
	0x563E, 0x57B9, 0x5932, 0x5AAA, 0x5C22, 0x5D99, 0x5F0F, 0x6084,
	0x61F8, 0x636B, 0x64DD, 0x664E, 0x67BE, 0x692D, 0x6A9B, 0x6C08,
	0x6D74, 0x6EDF, 0x7049, 0x71B2, 0x731A, 0x7480, 0x75E6, 0x774A,
	0x78AD, 0x7A10, 0x7B70, 0x7CD0, 0x7E2F, 0x7F8C, 0x80E8, 0x8243,
	0x839C, 0x84F5, 0x864C, 0x87A1, 0x88F6, 0x8A49, 0x8B9A, 0x8CEB,
	0x8E3A, 0x8F88, 0x90D4, 0x921F, 0x9368, 0x94B0, 0x95F7, 0x973C,
	0x9880, 0x99C2, 0x9B03, 0x9C42, 0x9D80, 0x9EBC, 0x9FF7, 0xA130,
	0xA268, 0xA39E, 0xA4D2, 0xA605, 0xA736, 0xA866, 0xA994, 0xAAC1,
	0xABEB, 0xAD14, 0xAE3C, 0xAF62, 0xB086, 0xB1A8, 0xB2C9, 0xB3E8,
	0xB505, 0xB620, 0xB73A, 0xB852, 0xB968, 0xBA7D, 0xBB8F, 0xBCA0,
	0xBDAF, 0xBEBC, 0xBFC7, 0xC0D1, 0xC1D8, 0xC2DE, 0xC3E2, 0xC4E4,
	0xC5E4, 0xC6E2, 0xC7DE, 0xC8D9, 0xC9D1, 0xCAC7, 0xCBBC, 0xCCAE,
	0xCD9F, 0xCE8E, 0xCF7A, 0xD065, 0xD14D, 0xD234, 0xD318, 0xD3FB,
	0xD4DB, 0xD5BA, 0xD696, 0xD770, 0xD848, 0xD91E, 0xD9F2, 0xDAC4,
	0xDB94, 0xDC62, 0xDD2D, 0xDDF7, 0xDEBE, 0xDF83, 0xE046, 0xE107,
	0xE1C6, 0xE282, 0xE33C, 0xE3F4, 0xE4AA, 0xE55E, 0xE610, 0xE6BF,
	0xE76C, 0xE817, 0xE8BF, 0xE966, 0xEA0A, 0xEAAB, 0xEB4B, 0xEBE8,
	0xEC83, 0xED1C, 0xEDB3, 0xEE47, 0xEED9, 0xEF68, 0xEFF5, 0xF080,
	0xF109, 0xF18F, 0xF213, 0xF295, 0xF314, 0xF391, 0xF40C, 0xF484,
	0xF4FA, 0xF56E, 0xF5DF, 0xF64E, 0xF6BA, 0xF724, 0xF78C, 0xF7F1,
	0xF854, 0xF8B4, 0xF913, 0xF96E, 0xF9C8, 0xFA1F, 0xFA73, 0xFAC5,
	0xFB15, 0xFB62, 0xFBAD, 0xFBF5, 0xFC3B, 0xFC7F, 0xFCC0, 0xFCFE,
	0xFD3B, 0xFD74, 0xFDAC, 0xFDE1, 0xFE13, 0xFE43, 0xFE71, 0xFE9C,
	0xFEC4, 0xFEEB, 0xFF0E, 0xFF30, 0xFF4E, 0xFF6B, 0xFF85, 0xFF9C,
	0xFFB1, 0xFFC4, 0xFFD4, 0xFFE1, 0xFFEC, 0xFFF5, 0xFFFB, 0xFFFF,
}

// squareLUT tabulates k*k for k=0..127, used by Isqrt.
var squareLUT = [128]int{
	0, 1, 4, 9, 16, 25, 36, 49,
	64, 81, 100, 121, 144, 169, 196, 225,
	256, 289, 324, 361, 400, 441, 484, 529,
	576, 625, 676, 729, 784, 841, 900, 961,
	1024, 1089, 1156, 1225, 1296, 1369, 1444, 1521,
	1600, 1681, 1764, 1849, 1936, 2025, 2116, 2209,
	2304, 2401, 2500, 2601, 2704, 2809, 2916, 3025,
	3136, 3249, 3364, 3481, 3600, 3721, 3844, 3969,
	4096, 4225, 4356, 4489, 4624, 4761, 4900, 5041,
	5184, 5329, 5476, 5625, 5776, 5929, 6084, 6241,
	6400, 6561, 6724, 6889, 7056, 7225, 7396, 7569,
	7744, 7921, 8100, 8281, 8464, 8649, 8836, 9025,
	9216, 9409, 9604, 9801, 10000, 10201, 10404, 10609,
	10816, 11025, 11236, 11449, 11664, 11881, 12100, 12321,
	12544, 12769, 12996, 13225, 13456, 13689, 13924, 14161,
	14400, 14641, 14884, 15129, 15376, 15625, 15876, 16129,
}
