// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of asset records in an ordered world state
//
// each asset is stored under its ID as the canonical encoding of its
// six fields, so every replica applying the same operation to the same
// state writes the same bytes.  Per key the states are:
//
//   absent  --CreateAsset-->  present
//   present --UpdateAsset-->  present   (full replace, fresh UploadDate)
//   present --DeleteAsset-->  absent
//
// any other transition fails without writing.  The existence check and
// the write are not locked here: when the store offers batches each
// operation runs inside one, and the store decides what happens to
// conflicting writers (Badger rejects the later commit, LevelDB runs
// batches one at a time).
package asset
