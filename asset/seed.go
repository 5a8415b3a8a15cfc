// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

// 2020-01-01T00:00:00Z
const seedUploadDate = 1577836800000

// the assets written by InitLedger
//
// the upload date is fixed so every replica seeds identical bytes
var seeds = []Asset{
	{ID: "asset1", Filename: "contract.pdf", Size: 5, Hash: "4f2d8c6b1a93e7d0", Sender: "Tomoko", UploadDate: seedUploadDate},
	{ID: "asset2", Filename: "invoice.xlsx", Size: 5, Hash: "9b1e3a7f0c52d846", Sender: "Brad", UploadDate: seedUploadDate},
	{ID: "asset3", Filename: "photo.jpg", Size: 10, Hash: "c07a5e19f3d2b684", Sender: "Jin Soo", UploadDate: seedUploadDate},
	{ID: "asset4", Filename: "notes.txt", Size: 10, Hash: "1d6f94b2e8a3c507", Sender: "Max", UploadDate: seedUploadDate},
	{ID: "asset5", Filename: "backup.tar.gz", Size: 15, Hash: "e5b30c8d7f1a2964", Sender: "Adriana", UploadDate: seedUploadDate},
	{ID: "asset6", Filename: "slides.pptx", Size: 15, Hash: "72c8a1f5d0e94b3e", Sender: "Michel", UploadDate: seedUploadDate},
}

// Seeds - a copy of the assets written by InitLedger
func Seeds() []Asset {
	s := make([]Asset, len(seeds))
	copy(s, seeds)
	return s
}
