// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package grayskull

// briefPattern holds the 256 fixed sample pair offsets used to build
// rotated BRIEF descriptors. The offsets are trained configuration
// data; changing them changes every descriptor, so they are not
// tunable.
var briefPattern = [256][4]int{
	{1, 0, 1, 3}, {0, 0, 3, 2}, {-1, 1, -1, -1}, {0, -4, -3, -1},
	{-2, 1, -2, -3}, {3, 0, 0, -3}, {-1, 0, -2, 1}, {-1, -1, -1, 4},
	{0, -2, 2, -2}, {0, -4, -3, 0}, {1, 0, 0, -1}, {-3, -1, -1, 2},
	{1, -4, 1, -1}, {-1, 1, 2, 2}, {-2, -1, 1, 2}, {-1, 0, -2, -2},
	{2, 3, 0, 2}, {1, -1, 1, 3}, {0, 3, -5, 2}, {0, -1, 0, -4},
	{0, 1, 3, -1}, {-2, -1, 2, 1}, {-1, 1, 0, 2}, {-1, -1, -1, -3},
	{1, 1, 0, 0}, {-3, -1, -1, -2}, {0, 1, 4, 0}, {1, 0, -4, 0},
	{0, 5, 0, 1}, {0, -2, 2, 2}, {2, -2, 3, -3}, {1, 4, -2, -1},
	{0, -1, -3, 0}, {-2, 1, -2, 3}, {-2, -1, 2, -2}, {0, 3, -3, 0},
	{1, 2, -2, -3}, {1, 1, 1, 1}, {-1, 0, 1, -1}, {4, 1, -2, 1},
	{-2, 2, 2, -2}, {2, 1, 2, 4}, {0, -2, -2, -2}, {0, 1, 1, 2},
	{0, 3, -1, 5}, {1, -2, -2, 1}, {0, 1, 1, 0}, {-2, -3, -1, 2},
	{0, -2, 0, 1}, {-2, 0, 0, -2}, {1, 1, 2, 2}, {-3, -2, 1, 1},
	{1, 8, 1, 2}, {2, 1, -1, 2}, {-2, 0, -1, 0}, {5, -4, 1, -3},
	{-1, 2, 0, -2}, {-1, 1, -1, 0}, {0, -1, 4, 1}, {-4, 0, -1, 2},
	{-2, 0, 1, 2}, {-2, -1, -1, -1}, {4, 1, -3, 2}, {4, 2, -3, -1},
	{3, -1, 1, 2}, {-2, 0, -6, -2}, {-1, -2, 3, -3}, {-1, 0, 3, -3},
	{2, 0, -2, 1}, {0, -1, 0, -1}, {0, 1, 3, -2}, {4, -4, 0, 1},
	{1, -1, 0, -1}, {-1, 2, 1, -1}, {2, 1, 2, 1}, {-2, -1, 1, 1},
	{0, 0, 3, -1}, {1, 0, 0, 2}, {2, 2, 3, 0}, {1, -1, 1, 0},
	{0, 1, -2, 4}, {-2, -2, 2, 2}, {1, 1, 0, -2}, {0, -1, 2, 0},
	{-2, -1, 1, -1}, {-2, 0, 0, -1}, {-1, 0, -3, -3}, {-1, 0, 1, 3},
	{2, 0, 0, -2}, {0, -1, 1, -2}, {1, 3, 0, 1}, {1, -1, 0, 0},
	{0, -2, 0, 1}, {3, 2, 4, -2}, {2, 0, 4, -2}, {-2, -1, -4, -1},
	{-2, 0, 1, 4}, {2, -1, -2, 1}, {-3, 4, 2, -1}, {-3, 3, 0, 2},
	{-3, -1, 0, 0}, {-1, 1, -2, 0}, {0, 1, 1, -2}, {-3, 3, 1, -1},
	{3, 0, 2, 0}, {4, 4, 0, 2}, {1, 3, -2, 1}, {2, -4, -2, -4},
	{-1, 1, 3, 0}, {3, -3, -3, 0}, {1, 0, -4, 0}, {-3, 1, 1, -2},
	{-1, -2, 0, 2}, {-2, 1, -1, -2}, {0, -2, -1, -2}, {4, 0, -1, 0},
	{0, 0, 1, 2}, {-1, -1, -1, -5}, {-3, 3, 3, 0}, {1, 1, 6, 2},
	{0, -2, -3, 0}, {-2, -3, -1, -2}, {3, 2, 0, 3}, {0, -2, 3, 1},
	{-2, 0, -2, -3}, {2, 4, -3, 1}, {-1, -1, -1, -2}, {0, -2, 1, 0},
	{15, -10, -14, 4}, {12, -5, -12, -1}, {-10, 6, 1, 14}, {8, -10, 3, 14},
	{9, -14, -1, -5}, {-8, 10, 3, -3}, {-4, -11, -10, 10}, {6, -12, 3, 4},
	{-15, 4, 1, -4}, {-1, -15, 10, -2}, {-10, -11, 14, -5}, {15, -12, -3, -5},
	{-13, -15, -10, 2}, {8, -6, -11, 7}, {-6, -4, -14, -3}, {-8, -14, 4, -15},
	{15, -11, -7, 1}, {-7, -5, -1, 8}, {-10, 7, -13, 14}, {15, 1, -11, 14},
	{12, -4, 2, -2}, {5, 8, -5, -7}, {-14, -4, -13, -13}, {-15, -8, 6, 12},
	{13, -8, -5, -7}, {-11, -2, 12, 14}, {-13, 5, -11, -11}, {3, 11, -2, 10},
	{14, -12, 9, -3}, {-6, 9, 2, -8}, {-8, -9, -8, -2}, {3, 13, -10, -15},
	{7, 15, -1, -15}, {9, 1, -15, -1}, {7, -14, -2, 5}, {-8, -8, 3, -9},
	{3, -10, -10, -13}, {-9, 3, -8, -6}, {4, -1, -1, 13}, {-15, 4, 14, -9},
	{11, -12, 13, -10}, {9, -15, 13, -11}, {11, 7, -15, 14}, {-12, 6, -14, -6},
	{-11, 11, -6, -15}, {6, -10, -3, 15}, {-1, -12, -3, 8}, {4, 8, -1, 13},
	{-8, -11, 13, -1}, {-12, -4, -3, -14}, {11, 15, 3, 3}, {-12, -12, 10, -5},
	{11, -11, 4, -5}, {14, -6, -8, -10}, {-10, -8, 7, -1}, {10, -2, -5, -4},
	{10, -3, -8, 14}, {2, 9, -15, -1}, {-8, 12, -5, -4}, {-4, -12, 0, -12},
	{-11, 8, -11, -8}, {15, -6, 1, 12}, {15, 10, -7, 6}, {3, 13, -2, -8},
	{11, -7, 0, 3}, {1, 3, -6, 11}, {1, 5, -7, 7}, {3, 11, -10, -7},
	{-2, 1, 12, -6}, {-7, 1, -12, -7}, {1, -1, -4, -2}, {3, 1, 1, -5},
	{1, 5, -4, 0}, {-14, 4, 6, -7}, {3, 8, -2, 5}, {-6, 3, -7, 10},
	{-5, -5, 3, -5}, {-3, 9, -11, -2}, {-8, 1, 1, -8}, {-1, 2, 0, -2},
	{4, -3, 3, -8}, {8, -12, -11, 7}, {0, 9, -4, 0}, {-5, 8, 7, -6},
	{-2, -9, 12, -1}, {3, -9, 14, -5}, {-2, 2, 5, 3}, {-1, -10, 9, 9},
	{-8, -10, 9, -6}, {-5, 8, -8, 10}, {1, -1, 1, -6}, {4, -5, 4, -1},
	{9, 8, 9, -1}, {3, 7, -8, -1}, {-4, -11, 1, 7}, {-9, 5, 2, -2},
	{-4, -10, -12, -2}, {-12, 0, -2, 1}, {-1, -8, 2, 2}, {0, 5, 0, 11},
	{-10, 0, 5, -8}, {1, -7, -4, 5}, {6, 13, 0, -2}, {1, -2, 6, -4},
	{-9, -7, -11, 9}, {9, 11, -1, 8}, {4, 7, 7, -11}, {8, 12, -10, 2},
	{-3, 5, -2, -7}, {-9, 2, 2, 1}, {1, 0, 1, 1}, {2, -5, 4, -14},
	{-11, -1, 2, -1}, {-7, -9, -2, -11}, {10, -1, -8, -11}, {10, 3, 10, 3},
	{9, 0, -9, 1}, {4, 4, 4, 11}, {-2, 1, 0, -12}, {-2, 0, -5, -7},
	{-7, 8, -9, 1}, {-13, -3, -6, 4}, {3, -9, -4, -7}, {-11, -1, 5, -5},
	{-7, 2, 15, 0}, {-3, 2, 13, 6}, {1, 0, 2, 1}, {-7, -4, -4, 3},
}
