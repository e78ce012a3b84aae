// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parsers contains the standard non-numeric argument parsers. Numeric
// parsing lives in package argparse.
//
// Every parser here is context free and follows the argparse protocol: it
// peeks at the front token, validates it and only then removes it.
package parsers
