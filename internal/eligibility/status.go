// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package eligibility

//go:generate go tool stringer -type Status -linecomment

// Status is the result of [Check].
type Status uint8

const (
	// Eligible parameters are needlessly passed by value.
	Eligible Status = iota // ok

	// Receiver is the method receiver.
	Receiver // rcv

	// MutablePointer types already allow the callee to modify the caller's value.
	MutablePointer // ptr

	// Duplicable types are cheap to copy.
	Duplicable // dup

	// Whitelisted types implement a trait that conventionally requires ownership.
	Whitelisted // wht

	// Borrowable types are explicitly bounded by the borrow trait.
	Borrowable // brw

	// AllBorrowable types have bounds that a reference satisfies as well.
	AllBorrowable // abr

	// NoBinding parameters are unnamed or blank.
	NoBinding // nob

	// MutableBinding parameters are modified in the body.
	MutableBinding // mut

	// Moved parameters are consumed in the body.
	Moved // mov
)
